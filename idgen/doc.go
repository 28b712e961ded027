// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package idgen mints the short identifiers and voter codes used throughout
the service.

All output is drawn from a fixed 32-symbol alphabet that omits 0/O and 1/I:

	id, err := idgen.GenerateID(idgen.ElectionIDLen) // e.g. "K7QF2M"
	code, err := idgen.GenerateCode()                // e.g. "ABCD-EF23"

Generation uses crypto/rand. There is deliberately no uniqueness check
against the store; IDs are short because they are meant to be typed and
shared by humans, and the collision probability at the expected number of
elections is negligible.

Normalize upper-cases and trims user input so lookups match minted IDs.
*/
package idgen
