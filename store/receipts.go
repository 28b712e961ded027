// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/quickvote/quickvote/models"
)

// ReceiptStore records one marker per (election, device) for elections that
// do not gate ballots with codes. The guarantee is deliberately best-effort:
// a device that presents a new UUID gets a new identity.
type ReceiptStore struct {
	kv KV
}

func NewReceiptStore(kv KV) *ReceiptStore {
	return &ReceiptStore{kv: kv}
}

func receiptKey(electionID, deviceID string) string {
	return "QV_RECEIPT_" + electionID + "_" + deviceID
}

// Get returns the receipt for this device on this election, if any.
// A corrupt receipt is treated as absent.
func (s *ReceiptStore) Get(electionID, deviceID string) (*models.Receipt, bool) {
	raw, ok, err := s.kv.Get(receiptKey(electionID, deviceID))
	if err != nil {
		slog.Error("failed to read receipt", "election_id", electionID, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var r models.Receipt
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		slog.Warn("receipt unparsable, treating as absent", "election_id", electionID, "error", err)
		return nil, false
	}
	return &r, true
}

// Set writes the receipt marker for this device on this election.
func (s *ReceiptStore) Set(electionID, deviceID string, r models.Receipt) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode receipt: %w", err)
	}
	if err := s.kv.Set(receiptKey(electionID, deviceID), string(raw)); err != nil {
		return fmt.Errorf("failed to persist receipt: %w", err)
	}
	return nil
}
