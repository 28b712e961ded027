// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/quickvote/quickvote/cliparse"
	"github.com/quickvote/quickvote/election"
	"github.com/quickvote/quickvote/idgen"
	"github.com/quickvote/quickvote/metrics"
	"github.com/quickvote/quickvote/middleware"
	"github.com/quickvote/quickvote/models"
	"github.com/quickvote/quickvote/share"
	"github.com/quickvote/quickvote/store"
)

// errNotFound flows out of store.Update callbacks when the election ID
// matches nothing; handlers translate it to a 404.
var errNotFound = errors.New("election not found")

type ElectionHandler struct {
	elections *store.ElectionStore
	cfg       cliparse.Config
}

func NewElectionHandler(elections *store.ElectionStore, cfg cliparse.Config) *ElectionHandler {
	return &ElectionHandler{elections: elections, cfg: cfg}
}

// Create handles POST /elections
func (h *ElectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	e, err := election.New(req.Title, req.Description, req.Candidates, req.RequireCodes, req.CodeCount, req.AutoCloseAt, time.Now())
	if errors.Is(err, election.ErrTitleRequired) || errors.Is(err, election.ErrTooFewCandidates) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to create election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create election")
		return
	}

	err = h.elections.Update(func(all map[string]*models.Election) (bool, error) {
		all[e.ID] = e
		return true, nil
	})
	if err != nil {
		slog.Error("failed to persist election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create election")
		return
	}

	metrics.ElectionsCreated.Inc()
	slog.Info("election created", "election_id", e.ID, "candidates", len(e.Candidates), "require_codes", e.RequireCodes)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateElectionResponse{
		Election:    *e,
		VoteLink:    share.Build(share.ViewVote, e.ID),
		ResultsLink: share.Build(share.ViewResults, e.ID),
	})
}

// Get handles GET /elections/{id}
// Returns the host view: full election, live tallies in candidate order,
// and code usage counts.
func (h *ElectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := idgen.Normalize(r.PathValue("id"))
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election ID is required")
		return
	}

	e, ok := h.elections.Get(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}

	resp := models.HostViewResponse{
		Election: *e,
		Live:     election.Results(e),
	}
	if e.RequireCodes {
		summary := election.CodeSummary(e)
		resp.Codes = &summary
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Open handles POST /elections/{id}/open
func (h *ElectionHandler) Open(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, election.Open, "voting opened")
}

// Close handles POST /elections/{id}/close
func (h *ElectionHandler) Close(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, election.Close, "voting closed")
}

// transition applies a lifecycle change under the store's writer lock.
// Repeating the current state is reported as a 409 warning, state unchanged.
func (h *ElectionHandler) transition(w http.ResponseWriter, r *http.Request, apply func(*models.Election) error, logMsg string) {
	id := idgen.Normalize(r.PathValue("id"))
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election ID is required")
		return
	}

	var status string
	err := h.elections.Update(func(all map[string]*models.Election) (bool, error) {
		e, ok := all[id]
		if !ok {
			return false, errNotFound
		}
		if err := apply(e); err != nil {
			return false, err
		}
		status = e.Status
		return true, nil
	})

	switch {
	case errors.Is(err, errNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	case errors.Is(err, election.ErrAlreadyOpen), errors.Is(err, election.ErrAlreadyClosed):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		slog.Error("failed to persist lifecycle change", "election_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update election")
		return
	}

	slog.Info(logMsg, "election_id", id)
	middleware.JSONResponse(w, http.StatusOK, models.LifecycleResponse{ID: id, Status: status})
}
