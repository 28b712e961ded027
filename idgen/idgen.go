// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package idgen

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Alphabet holds the 32 symbols used for every generated identifier and
// voter code. Visually ambiguous characters (0/O, 1/I) are excluded so IDs
// survive being read aloud or written down.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Conventional lengths for the identifiers this service mints.
const (
	ElectionIDLen  = 6
	CandidateIDLen = 5
	BallotIDLen    = 8
)

// GenerateID draws length characters uniformly from Alphabet. IDs are not
// checked for uniqueness against the store; at the expected scale a
// collision is accepted as negligible.
func GenerateID(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	for i := range b {
		// 32 symbols divide 256 evenly, so masking keeps the draw uniform.
		b[i] = Alphabet[b[i]&31]
	}
	return string(b), nil
}

// GenerateCode produces a voter code in XXXX-XXXX form from Alphabet.
func GenerateCode() (string, error) {
	left, err := GenerateID(4)
	if err != nil {
		return "", fmt.Errorf("failed to generate voter code: %w", err)
	}
	right, err := GenerateID(4)
	if err != nil {
		return "", fmt.Errorf("failed to generate voter code: %w", err)
	}
	return left + "-" + right, nil
}

// Normalize canonicalizes user-supplied IDs and codes: trimmed and
// upper-cased, matching how identifiers are minted.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
