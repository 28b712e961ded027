// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateElectionRequest: title, description, candidates, require_codes, code_count, auto_close_at
  - CastVoteRequest: candidate_id, code, voter_name

# Response Types

Types for JSON responses:

  - CreateElectionResponse: election, vote_link, results_link
  - HostViewResponse: election, live tallies, code summary
  - BallotViewResponse: voter-facing ballot (no tallies)
  - CastVoteResponse: ballot_id, message, results
  - LifecycleResponse: id, status
  - ResultsResponse: election, results
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Election: election metadata, candidates, lifecycle state, code set, ballots
  - Candidate: a named option with a running vote counter
  - CodeState: single-use state of one voter code
  - Ballot: append-only audit record of one cast vote
  - Receipt: per-device marker for code-less elections
  - Results / ResultRow: tally projection with rounded percentages

# Constants

Status values:

	StatusDraft  = "draft"
	StatusOpen   = "open"
	StatusClosed = "closed"

Eligibility channels:

	ViaCode   = "code"
	ViaDevice = "device"

AnonymousVoter is recorded on a used code when no voter name was given.
*/
package models
