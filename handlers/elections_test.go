// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/quickvote/quickvote/idgen"
	"github.com/quickvote/quickvote/models"
	"github.com/quickvote/quickvote/testutil"
)

func TestCreateElection(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{
			name: "valid election",
			body: models.CreateElectionRequest{
				Title:      "Lunch",
				Candidates: []string{"Pizza", "Tacos"},
			},
			wantStatus: 201,
		},
		{
			name: "missing title",
			body: models.CreateElectionRequest{
				Candidates: []string{"Pizza", "Tacos"},
			},
			wantStatus: 400,
		},
		{
			name: "one candidate",
			body: models.CreateElectionRequest{
				Title:      "Lunch",
				Candidates: []string{"Pizza"},
			},
			wantStatus: 400,
		},
		{
			name:       "invalid JSON",
			body:       "not an object at all",
			wantStatus: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elections, _ := testutil.NewStores(t)
			h := NewElectionHandler(elections, testutil.GetTestConfig())

			req := testutil.MakeRequest("POST", "/elections", tt.body, nil)
			w := httptest.NewRecorder()
			h.Create(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}
}

func TestCreateElectionResponse(t *testing.T) {
	elections, _ := testutil.NewStores(t)
	h := NewElectionHandler(elections, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/elections", models.CreateElectionRequest{
		Title:      "Lunch",
		Candidates: []string{"Pizza", "Tacos"},
	}, nil)
	w := httptest.NewRecorder()
	h.Create(w, req)

	testutil.AssertStatus(t, w, 201)

	var resp models.CreateElectionResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Election.ID) != idgen.ElectionIDLen {
		t.Errorf("Expected ID of length %d, got %q", idgen.ElectionIDLen, resp.Election.ID)
	}
	if resp.Election.Status != models.StatusDraft {
		t.Errorf("Expected draft status, got %q", resp.Election.Status)
	}
	if resp.VoteLink != "vote:"+resp.Election.ID {
		t.Errorf("Expected vote link vote:%s, got %q", resp.Election.ID, resp.VoteLink)
	}
	if resp.ResultsLink != "results:"+resp.Election.ID {
		t.Errorf("Expected results link results:%s, got %q", resp.Election.ID, resp.ResultsLink)
	}

	// And it must actually be persisted.
	if _, ok := elections.Get(resp.Election.ID); !ok {
		t.Error("Created election not found in the store")
	}
}

func TestCreateElectionWithCodes(t *testing.T) {
	tests := []struct {
		name      string
		codeCount int
		wantCodes int
	}{
		{"explicit count", 5, 5},
		{"zero clamps to one", 0, 1},
		{"over the cap clamps down", 20000, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elections, _ := testutil.NewStores(t)
			h := NewElectionHandler(elections, testutil.GetTestConfig())

			req := testutil.MakeRequest("POST", "/elections", models.CreateElectionRequest{
				Title:        "Lunch",
				Candidates:   []string{"Pizza", "Tacos"},
				RequireCodes: true,
				CodeCount:    tt.codeCount,
			}, nil)
			w := httptest.NewRecorder()
			h.Create(w, req)

			testutil.AssertStatus(t, w, 201)

			var resp models.CreateElectionResponse
			testutil.AssertJSON(t, w, &resp)
			if len(resp.Election.VoterCodes) != tt.wantCodes {
				t.Errorf("Expected %d codes, got %d", tt.wantCodes, len(resp.Election.VoterCodes))
			}
		})
	}
}

func TestGetElection(t *testing.T) {
	elections, _ := testutil.NewStores(t)
	h := NewElectionHandler(elections, testutil.GetTestConfig())
	seeded := testutil.SeedElection(t, elections, models.StatusOpen, true, 3)

	req := testutil.MakeRequest("GET", "/elections/"+seeded.ID, nil, nil)
	req.SetPathValue("id", seeded.ID)
	w := httptest.NewRecorder()
	h.Get(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.HostViewResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Election.ID != seeded.ID {
		t.Errorf("Expected election %s, got %s", seeded.ID, resp.Election.ID)
	}
	if len(resp.Live.Rows) != 3 {
		t.Errorf("Expected 3 live rows, got %d", len(resp.Live.Rows))
	}
	if resp.Codes == nil || resp.Codes.Issued != 3 {
		t.Errorf("Expected a code summary with 3 issued, got %+v", resp.Codes)
	}
}

func TestGetElectionNormalizesID(t *testing.T) {
	elections, _ := testutil.NewStores(t)
	h := NewElectionHandler(elections, testutil.GetTestConfig())
	seeded := testutil.SeedElection(t, elections, models.StatusOpen, false, 0)

	lower := "  " + strings.ToLower(seeded.ID) + "  "
	req := testutil.MakeRequest("GET", "/elections/x", nil, nil)
	req.SetPathValue("id", lower)
	w := httptest.NewRecorder()
	h.Get(w, req)

	testutil.AssertStatus(t, w, 200)
}

func TestGetElectionNotFound(t *testing.T) {
	elections, _ := testutil.NewStores(t)
	h := NewElectionHandler(elections, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/elections/ZZZZZZ", nil, nil)
	req.SetPathValue("id", "ZZZZZZ")
	w := httptest.NewRecorder()
	h.Get(w, req)

	testutil.AssertStatus(t, w, 404)
}

func TestLifecycleEndpoints(t *testing.T) {
	elections, _ := testutil.NewStores(t)
	h := NewElectionHandler(elections, testutil.GetTestConfig())
	seeded := testutil.SeedElection(t, elections, models.StatusDraft, false, 0)

	open := func(t *testing.T, wantStatus int, wantState string) {
		t.Helper()
		req := testutil.MakeRequest("POST", "/elections/"+seeded.ID+"/open", nil, nil)
		req.SetPathValue("id", seeded.ID)
		w := httptest.NewRecorder()
		h.Open(w, req)
		testutil.AssertStatus(t, w, wantStatus)
		if e, _ := elections.Get(seeded.ID); e.Status != wantState {
			t.Errorf("Expected state %q, got %q", wantState, e.Status)
		}
	}
	closeIt := func(t *testing.T, wantStatus int, wantState string) {
		t.Helper()
		req := testutil.MakeRequest("POST", "/elections/"+seeded.ID+"/close", nil, nil)
		req.SetPathValue("id", seeded.ID)
		w := httptest.NewRecorder()
		h.Close(w, req)
		testutil.AssertStatus(t, w, wantStatus)
		if e, _ := elections.Get(seeded.ID); e.Status != wantState {
			t.Errorf("Expected state %q, got %q", wantState, e.Status)
		}
	}

	open(t, 200, models.StatusOpen)
	open(t, 409, models.StatusOpen) // repeat is a warned no-op
	closeIt(t, 200, models.StatusClosed)
	closeIt(t, 409, models.StatusClosed)
	open(t, 200, models.StatusOpen) // re-opening a closed election is allowed
}

func TestLifecycleNotFound(t *testing.T) {
	elections, _ := testutil.NewStores(t)
	h := NewElectionHandler(elections, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/elections/ZZZZZZ/open", nil, nil)
	req.SetPathValue("id", "ZZZZZZ")
	w := httptest.NewRecorder()
	h.Open(w, req)

	testutil.AssertStatus(t, w, 404)
}
