// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/quickvote/quickvote/models"
)

// ElectionsKey is the document key the full election map is stored under.
const ElectionsKey = "QV_ELECTIONS_V1"

type electionsDoc struct {
	Elections map[string]*models.Election `json:"elections"`
}

// ElectionStore persists the entire election map as one JSON document.
// Every mutation is read-modify-write of the whole document; Update
// serializes writers so one logical operation is one persisted write.
type ElectionStore struct {
	mu sync.Mutex
	kv KV
}

func NewElectionStore(kv KV) *ElectionStore {
	return &ElectionStore{kv: kv}
}

// Load returns the full election map. An absent or unparsable document is
// treated as an empty store; parse faults are never propagated to callers.
func (s *ElectionStore) Load() map[string]*models.Election {
	raw, ok, err := s.kv.Get(ElectionsKey)
	if err != nil {
		slog.Error("failed to read election document", "error", err)
		return map[string]*models.Election{}
	}
	if !ok {
		return map[string]*models.Election{}
	}

	var doc electionsDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		slog.Warn("election document unparsable, treating as empty", "error", err)
		return map[string]*models.Election{}
	}
	if doc.Elections == nil {
		return map[string]*models.Election{}
	}
	return doc.Elections
}

// Get looks up one election by its (already normalized) ID.
func (s *ElectionStore) Get(id string) (*models.Election, bool) {
	e, ok := s.Load()[id]
	return e, ok
}

// Save replaces the whole document. Last write wins; there is no partial
// update or merge.
func (s *ElectionStore) Save(all map[string]*models.Election) error {
	raw, err := json.Marshal(electionsDoc{Elections: all})
	if err != nil {
		return fmt.Errorf("failed to encode election document: %w", err)
	}
	if err := s.kv.Set(ElectionsKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist election document: %w", err)
	}
	return nil
}

// Update runs fn against a fresh snapshot of the election map under the
// writer lock, and persists the document once iff fn reports a change and
// no error. Errors from fn pass through untouched so callers can match
// typed election errors.
func (s *ElectionStore) Update(fn func(all map[string]*models.Election) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.Load()
	changed, err := fn(all)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return s.Save(all)
}
