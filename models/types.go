package models

import "time"

// Election status constants
const (
	StatusDraft  = "draft"
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Ballot via constants: how eligibility was established
const (
	ViaCode   = "code"
	ViaDevice = "device"
)

// AnonymousVoter marks a used code when the voter left no name.
const AnonymousVoter = "(anonymous)"

// Request types

type CreateElectionRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Candidates   []string   `json:"candidates"`
	RequireCodes bool       `json:"require_codes"`
	CodeCount    int        `json:"code_count"`
	AutoCloseAt  *time.Time `json:"auto_close_at,omitempty"`
}

type CastVoteRequest struct {
	CandidateID string `json:"candidate_id"`
	Code        string `json:"code,omitempty"`
	VoterName   string `json:"voter_name,omitempty"`
}

// Response types

type CreateElectionResponse struct {
	Election    Election `json:"election"`
	VoteLink    string   `json:"vote_link"`
	ResultsLink string   `json:"results_link"`
}

type HostViewResponse struct {
	Election Election     `json:"election"`
	Live     Results      `json:"live"`
	Codes    *CodeSummary `json:"codes,omitempty"`
}

type CodeSummary struct {
	Issued int `json:"issued"`
	Used   int `json:"used"`
}

type BallotViewResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Status       string            `json:"status"`
	RequiresCode bool              `json:"requires_code"`
	Candidates   []BallotCandidate `json:"candidates"`
}

type BallotCandidate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CastVoteResponse struct {
	BallotID string  `json:"ballot_id"`
	Message  string  `json:"message"`
	Results  Results `json:"results"`
}

type LifecycleResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ResultsResponse is the public projection: election metadata without the
// code set or ballot log, plus sorted tallies.
type ResultsResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Results     Results `json:"results"`
}

// Domain types

type Election struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Candidates   []*Candidate          `json:"candidates"`
	Status       string                `json:"status"`
	CreatedAt    time.Time             `json:"created_at"`
	AutoCloseAt  *time.Time            `json:"auto_close_at,omitempty"`
	RequireCodes bool                  `json:"require_codes"`
	VoterCodes   map[string]*CodeState `json:"voter_codes"`
	Ballots      []Ballot              `json:"ballots"`
}

type Candidate struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Votes int    `json:"votes"`
}

type CodeState struct {
	Used   bool       `json:"used"`
	UsedBy string     `json:"used_by,omitempty"`
	UsedAt *time.Time `json:"used_at,omitempty"`
}

// Ballot is an audit record of one cast vote. Tallies live on the candidate
// counters; ballots are never read back to recount.
type Ballot struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	VoterName   string    `json:"voter_name,omitempty"`
	At          time.Time `json:"at"`
	Via         string    `json:"via"`
}

// Receipt is the per-device marker that blocks a second anonymous vote in
// elections that do not require codes.
type Receipt struct {
	At        time.Time `json:"at"`
	VoterName string    `json:"voter_name,omitempty"`
}

// Tally types

type Results struct {
	Total int         `json:"total"`
	Rows  []ResultRow `json:"rows"`
}

type ResultRow struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Votes       int    `json:"votes"`
	Percent     int    `json:"percent"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
