// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quickvote/quickvote/cliparse"
	"github.com/quickvote/quickvote/election"
	"github.com/quickvote/quickvote/models"
	"github.com/quickvote/quickvote/store"
)

// NewStores returns election and receipt stores over one fresh in-memory KV.
func NewStores(t *testing.T) (*store.ElectionStore, *store.ReceiptStore) {
	t.Helper()
	kv := store.NewMemoryKV()
	return store.NewElectionStore(kv), store.NewReceiptStore(kv)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              3327,
		DatabaseType:      "memory",
		AutoCloseInterval: 30 * time.Second,
		BaseURL:           "http://localhost:3327",
	}
}

// SeedElection creates and persists an election with three candidates.
// status should be models.StatusDraft, StatusOpen, or StatusClosed.
func SeedElection(t *testing.T, elections *store.ElectionStore, status string, requireCodes bool, codeCount int) *models.Election {
	t.Helper()

	e, err := election.New("Test Election", "A test election",
		[]string{"Alice", "Bob", "Carol"}, requireCodes, codeCount, nil, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test election: %v", err)
	}
	e.Status = status

	err = elections.Update(func(all map[string]*models.Election) (bool, error) {
		all[e.ID] = e
		return true, nil
	})
	if err != nil {
		t.Fatalf("Failed to persist test election: %v", err)
	}

	return e
}

// AnyCode returns one voter code of a seeded code-gated election.
func AnyCode(t *testing.T, e *models.Election) string {
	t.Helper()
	for code := range e.VoterCodes {
		return code
	}
	t.Fatal("election has no voter codes")
	return ""
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
