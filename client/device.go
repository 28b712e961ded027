// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LoadDeviceUUID returns this machine's stable device identity, minting
// and persisting one under the user config dir on first use. The identity
// backs the one-vote-per-device receipt for code-less elections; wiping
// the file grants a fresh identity, which is the documented best-effort
// guarantee.
func LoadDeviceUUID() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return uuid.NewString(), fmt.Errorf("no config dir, using ephemeral device identity: %w", err)
	}
	path := filepath.Join(dir, "quickvote", "device-uuid")

	if raw, err := os.ReadFile(path); err == nil {
		if id, err := uuid.Parse(strings.TrimSpace(string(raw))); err == nil {
			return id.String(), nil
		}
		// Corrupt file: fall through and mint a fresh identity.
	}

	id := uuid.NewString()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return id, fmt.Errorf("failed to persist device identity: %w", err)
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return id, fmt.Errorf("failed to persist device identity: %w", err)
	}
	return id, nil
}
