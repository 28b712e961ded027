// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package share builds and parses the deep links that address one election
// in one view, in the form "view:electionID" (for example "results:K7QF2M").
// A full share URL carries the link in the fragment so a single-page client
// can route on it.
package share

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quickvote/quickvote/idgen"
)

// Views a deep link can address.
const (
	ViewVote    = "vote"
	ViewResults = "results"
)

var ErrMalformedLink = errors.New("malformed share link")

// Build renders the view:electionID form.
func Build(view, electionID string) string {
	return view + ":" + electionID
}

// Parse splits a deep link into view and election ID. The ID is normalized
// the way the server normalizes all incoming IDs.
func Parse(link string) (view, electionID string, err error) {
	view, id, ok := strings.Cut(strings.TrimPrefix(link, "#"), ":")
	if !ok || id == "" {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedLink, link)
	}
	if view != ViewVote && view != ViewResults {
		return "", "", fmt.Errorf("%w: unknown view %q", ErrMalformedLink, view)
	}
	return view, idgen.Normalize(id), nil
}

// URL renders a full share URL against a base address.
func URL(base, view, electionID string) string {
	return strings.TrimRight(base, "/") + "/#" + Build(view, electionID)
}
