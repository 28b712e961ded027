// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

// Validation errors (creation).
var (
	ErrTitleRequired    = errors.New("title is required")
	ErrTooFewCandidates = errors.New("at least two candidates are required")
)

// Lifecycle no-ops. These are warnings, not failures: state is unchanged
// and the election is already where the host asked it to be.
var (
	ErrAlreadyOpen   = errors.New("election is already open")
	ErrAlreadyClosed = errors.New("election is already closed")
)

// Casting errors. None of them leave partial state behind.
var (
	ErrNotOpen           = errors.New("voting is not open")
	ErrNoSelection       = errors.New("no candidate selected")
	ErrMissingCode       = errors.New("this election requires a voter code")
	ErrInvalidCode       = errors.New("invalid voter code")
	ErrCodeUsed          = errors.New("this code has already been used")
	ErrAlreadyVoted      = errors.New("this device has already voted")
	ErrCandidateNotFound = errors.New("candidate not found")
)
