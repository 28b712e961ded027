// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"testing"
	"time"

	"github.com/quickvote/quickvote/models"
)

func TestLoadEmptyStore(t *testing.T) {
	s := NewElectionStore(NewMemoryKV())

	all := s.Load()
	if all == nil || len(all) != 0 {
		t.Errorf("Expected an empty map from a fresh store, got %v", all)
	}
}

func TestLoadCorruptDocument(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", "{not json"},
		{"wrong shape", `"just a string"`},
		{"null elections", `{"elections":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemoryKV()
			if err := kv.Set(ElectionsKey, tt.raw); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			all := NewElectionStore(kv).Load()
			if all == nil || len(all) != 0 {
				t.Errorf("Expected corrupt document to read as empty, got %v", all)
			}
		})
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := NewElectionStore(NewMemoryKV())

	e := &models.Election{
		ID:     "K7QF2M",
		Title:  "Lunch",
		Status: models.StatusOpen,
		Candidates: []*models.Candidate{
			{ID: "A2B3C", Name: "Pizza", Votes: 2},
			{ID: "D4E5F", Name: "Tacos", Votes: 1},
		},
		CreatedAt:  time.Now().UTC(),
		VoterCodes: map[string]*models.CodeState{},
		Ballots:    []models.Ballot{},
	}
	if err := s.Save(map[string]*models.Election{e.ID: e}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, ok := s.Get("K7QF2M")
	if !ok {
		t.Fatal("Expected to find the saved election")
	}
	if got.Title != "Lunch" || got.Status != models.StatusOpen {
		t.Errorf("Roundtrip lost fields: %+v", got)
	}
	if len(got.Candidates) != 2 || got.Candidates[0].Votes != 2 {
		t.Errorf("Roundtrip lost candidates: %+v", got.Candidates)
	}
}

func TestUpdatePersistsOnChange(t *testing.T) {
	s := NewElectionStore(NewMemoryKV())

	err := s.Update(func(all map[string]*models.Election) (bool, error) {
		all["K7QF2M"] = &models.Election{ID: "K7QF2M", Title: "Lunch"}
		return true, nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if _, ok := s.Get("K7QF2M"); !ok {
		t.Error("Expected the change to be persisted")
	}
}

func TestUpdateSkipsPersistWithoutChange(t *testing.T) {
	s := NewElectionStore(NewMemoryKV())
	if err := s.Save(map[string]*models.Election{"K7QF2M": {ID: "K7QF2M"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// fn mutates its snapshot but reports no change, so nothing is written.
	err := s.Update(func(all map[string]*models.Election) (bool, error) {
		delete(all, "K7QF2M")
		return false, nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if _, ok := s.Get("K7QF2M"); !ok {
		t.Error("Expected the unchanged document to survive")
	}
}

func TestUpdateErrorPassthrough(t *testing.T) {
	s := NewElectionStore(NewMemoryKV())
	sentinel := errors.New("vote rejected")

	err := s.Update(func(all map[string]*models.Election) (bool, error) {
		all["K7QF2M"] = &models.Election{ID: "K7QF2M"}
		return true, sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("Expected the callback error unchanged, got %v", err)
	}

	if _, ok := s.Get("K7QF2M"); ok {
		t.Error("Expected no persist after a callback error")
	}
}

func TestReceiptRoundtrip(t *testing.T) {
	s := NewReceiptStore(NewMemoryKV())

	if _, ok := s.Get("K7QF2M", "dev-1"); ok {
		t.Error("Expected no receipt before Set")
	}

	at := time.Now().UTC()
	if err := s.Set("K7QF2M", "dev-1", models.Receipt{At: at, VoterName: "Dana"}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	r, ok := s.Get("K7QF2M", "dev-1")
	if !ok {
		t.Fatal("Expected a receipt after Set")
	}
	if r.VoterName != "Dana" || !r.At.Equal(at) {
		t.Errorf("Roundtrip lost fields: %+v", r)
	}

	// Receipts are scoped per election and per device.
	if _, ok := s.Get("OTHER1", "dev-1"); ok {
		t.Error("Receipt leaked across elections")
	}
	if _, ok := s.Get("K7QF2M", "dev-2"); ok {
		t.Error("Receipt leaked across devices")
	}
}

func TestReceiptCorruptTreatedAsAbsent(t *testing.T) {
	kv := NewMemoryKV()
	if err := kv.Set("QV_RECEIPT_K7QF2M_dev-1", "{broken"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, ok := NewReceiptStore(kv).Get("K7QF2M", "dev-1"); ok {
		t.Error("Expected a corrupt receipt to read as absent")
	}
}
