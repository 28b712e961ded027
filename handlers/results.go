// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/quickvote/quickvote/cliparse"
	"github.com/quickvote/quickvote/election"
	"github.com/quickvote/quickvote/idgen"
	"github.com/quickvote/quickvote/middleware"
	"github.com/quickvote/quickvote/models"
	"github.com/quickvote/quickvote/store"
)

type ResultsHandler struct {
	elections *store.ElectionStore
	cfg       cliparse.Config
}

func NewResultsHandler(elections *store.ElectionStore, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{elections: elections, cfg: cfg}
}

// GetResults handles GET /elections/{id}/results
// Public projection: metadata plus tallies sorted descending by votes.
// Live tallies are visible to anyone holding the election ID, open or
// closed; there is no sealing.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
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

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Status:      e.Status,
		Results:     election.SortedResults(e),
	})
}
