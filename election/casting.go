// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"strings"
	"time"

	"github.com/quickvote/quickvote/idgen"
	"github.com/quickvote/quickvote/models"
)

// Vote is one casting attempt.
type Vote struct {
	CandidateID string
	Code        string // required iff the election gates by codes
	VoterName   string // optional
}

// CastVote validates eligibility and applies one ballot to e in memory:
// the candidate counter, the ballot log, and the code flip move together,
// and the caller persists the election in a single write afterwards. On
// any error e is untouched.
//
// hasReceipt reports whether this device already holds a receipt for e;
// it is only consulted when the election does not require codes. The
// returned ballot's Via field tells the caller whether to write a receipt.
func CastVote(e *models.Election, v Vote, hasReceipt bool, now time.Time) (*models.Ballot, error) {
	if e.Status != models.StatusOpen {
		return nil, ErrNotOpen
	}
	if v.CandidateID == "" {
		return nil, ErrNoSelection
	}

	code := idgen.Normalize(v.Code)
	if e.RequireCodes {
		if code == "" {
			return nil, ErrMissingCode
		}
		entry, ok := e.VoterCodes[code]
		if !ok {
			return nil, ErrInvalidCode
		}
		if entry.Used {
			return nil, ErrCodeUsed
		}
	} else if hasReceipt {
		return nil, ErrAlreadyVoted
	}

	var candidate *models.Candidate
	for _, c := range e.Candidates {
		if c.ID == v.CandidateID {
			candidate = c
			break
		}
	}
	if candidate == nil {
		return nil, ErrCandidateNotFound
	}

	ballotID, err := idgen.GenerateID(idgen.BallotIDLen)
	if err != nil {
		return nil, fmt.Errorf("failed to mint ballot ID: %w", err)
	}

	via := models.ViaDevice
	if e.RequireCodes {
		via = models.ViaCode
	}
	ballot := models.Ballot{
		ID:          ballotID,
		CandidateID: candidate.ID,
		VoterName:   strings.TrimSpace(v.VoterName),
		At:          now,
		Via:         via,
	}

	candidate.Votes++
	e.Ballots = append(e.Ballots, ballot)

	if e.RequireCodes {
		usedBy := ballot.VoterName
		if usedBy == "" {
			usedBy = models.AnonymousVoter
		}
		entry := e.VoterCodes[code]
		entry.Used = true
		entry.UsedBy = usedBy
		usedAt := now
		entry.UsedAt = &usedAt
	}

	return &ballot, nil
}
