// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http/httptest"
	"testing"

	"github.com/quickvote/quickvote/models"
	"github.com/quickvote/quickvote/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	elections, receipts := testutil.NewStores(t)
	mux := NewRouter(elections, receipts, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/health", nil, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, 200)
	if w.Body.String() != "OK" {
		t.Errorf("Expected body OK, got %q", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	elections, receipts := testutil.NewStores(t)
	mux := NewRouter(elections, receipts, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/", nil, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, 200)
	if w.Body.String() != "quickvote API v1" {
		t.Errorf("Expected API banner, got %q", w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	elections, receipts := testutil.NewStores(t)
	mux := NewRouter(elections, receipts, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/metrics", nil, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, 200)
}

func TestRouting(t *testing.T) {
	elections, receipts := testutil.NewStores(t)
	mux := NewRouter(elections, receipts, testutil.GetTestConfig())
	seeded := testutil.SeedElection(t, elections, models.StatusOpen, true, 2)

	tests := []struct {
		name       string
		method     string
		path       string
		body       interface{}
		wantStatus int
	}{
		{"create election", "POST", "/elections", models.CreateElectionRequest{Title: "T", Candidates: []string{"A", "B"}}, 201},
		{"host view", "GET", "/elections/" + seeded.ID, nil, 200},
		{"ballot view", "GET", "/elections/" + seeded.ID + "/ballot", nil, 200},
		{"results view", "GET", "/elections/" + seeded.ID + "/results", nil, 200},
		{"codes export", "GET", "/elections/" + seeded.ID + "/codes.csv", nil, 200},
		{"unknown election", "GET", "/elections/ZZZZZZ", nil, 404},
		{"close election", "POST", "/elections/" + seeded.ID + "/close", nil, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest(tt.method, tt.path, tt.body, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}
}

func TestVoteThroughRouter(t *testing.T) {
	elections, receipts := testutil.NewStores(t)
	mux := NewRouter(elections, receipts, testutil.GetTestConfig())
	seeded := testutil.SeedElection(t, elections, models.StatusOpen, false, 0)

	req := testutil.MakeRequest("POST", "/elections/"+seeded.ID+"/votes",
		models.CastVoteRequest{CandidateID: seeded.Candidates[0].ID},
		map[string]string{"X-Device-UUID": "device-a"})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, 201)

	var resp models.CastVoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Results.Total != 1 {
		t.Errorf("Expected total 1, got %d", resp.Results.Total)
	}
}
