// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"math"
	"sort"

	"github.com/quickvote/quickvote/models"
)

// Results computes tallies in original candidate order: the host live view.
// Percent is round(votes/total*100), or 0 when nothing has been cast.
// Rounded percentages need not sum to 100 on 3+ way splits; that is
// documented behavior, not a bug.
func Results(e *models.Election) models.Results {
	total := 0
	for _, c := range e.Candidates {
		total += c.Votes
	}

	rows := make([]models.ResultRow, 0, len(e.Candidates))
	for _, c := range e.Candidates {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(c.Votes) / float64(total) * 100))
		}
		rows = append(rows, models.ResultRow{
			CandidateID: c.ID,
			Name:        c.Name,
			Votes:       c.Votes,
			Percent:     pct,
		})
	}
	return models.Results{Total: total, Rows: rows}
}

// SortedResults is the public projection: same computation, rows ordered by
// votes descending (stable, so ties keep candidate order). The election's
// candidate slice is never reordered.
func SortedResults(e *models.Election) models.Results {
	r := Results(e)
	sort.SliceStable(r.Rows, func(i, j int) bool {
		return r.Rows[i].Votes > r.Rows[j].Votes
	})
	return r
}

// CodeSummary counts issued and used voter codes for the host view.
func CodeSummary(e *models.Election) models.CodeSummary {
	used := 0
	for _, c := range e.VoterCodes {
		if c.Used {
			used++
		}
	}
	return models.CodeSummary{Issued: len(e.VoterCodes), Used: used}
}
