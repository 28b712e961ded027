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

// Bounds for the voter code set generated at creation time. The set is
// fixed once generated and never grows.
const (
	MinCodeCount = 1
	MaxCodeCount = 10000
)

// New builds a draft election with zero votes, a fixed candidate set and,
// when requireCodes is set, a fixed set of single-use voter codes.
// Candidate names are trimmed and blanks dropped before validation.
func New(title, description string, candidateNames []string, requireCodes bool, codeCount int, autoCloseAt *time.Time, now time.Time) (*models.Election, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	names := make([]string, 0, len(candidateNames))
	for _, n := range candidateNames {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if len(names) < 2 {
		return nil, ErrTooFewCandidates
	}

	id, err := idgen.GenerateID(idgen.ElectionIDLen)
	if err != nil {
		return nil, fmt.Errorf("failed to mint election ID: %w", err)
	}

	candidates := make([]*models.Candidate, 0, len(names))
	for _, name := range names {
		cid, err := idgen.GenerateID(idgen.CandidateIDLen)
		if err != nil {
			return nil, fmt.Errorf("failed to mint candidate ID: %w", err)
		}
		candidates = append(candidates, &models.Candidate{ID: cid, Name: name})
	}

	voterCodes := map[string]*models.CodeState{}
	if requireCodes {
		n := clamp(codeCount, MinCodeCount, MaxCodeCount)
		for len(voterCodes) < n {
			code, err := idgen.GenerateCode()
			if err != nil {
				return nil, fmt.Errorf("failed to mint voter code: %w", err)
			}
			voterCodes[code] = &models.CodeState{}
		}
	}

	return &models.Election{
		ID:           id,
		Title:        title,
		Description:  strings.TrimSpace(description),
		Candidates:   candidates,
		Status:       models.StatusDraft,
		CreatedAt:    now,
		AutoCloseAt:  autoCloseAt,
		RequireCodes: requireCodes,
		VoterCodes:   voterCodes,
		Ballots:      []models.Ballot{},
	}, nil
}

// Open moves the election to open. Opening an already-open election is a
// warned no-op; opening a closed election succeeds (hosts may re-open).
func Open(e *models.Election) error {
	if e.Status == models.StatusOpen {
		return ErrAlreadyOpen
	}
	e.Status = models.StatusOpen
	return nil
}

// Close moves the election to closed. Closing an already-closed election
// is a warned no-op.
func Close(e *models.Election) error {
	if e.Status == models.StatusClosed {
		return ErrAlreadyClosed
	}
	e.Status = models.StatusClosed
	return nil
}

// CheckAutoClose closes every open election whose deadline has passed and
// reports whether anything changed, so the caller persists only on change.
// Idempotent: a second sweep with the same clock changes nothing.
func CheckAutoClose(all map[string]*models.Election, now time.Time) bool {
	changed := false
	for _, e := range all {
		if e.Status == models.StatusOpen && e.AutoCloseAt != nil && !e.AutoCloseAt.After(now) {
			e.Status = models.StatusClosed
			changed = true
		}
	}
	return changed
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
