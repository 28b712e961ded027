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
	"github.com/quickvote/quickvote/store"
)

// errDeviceRequired is raised when a code-less election is voted on
// without a device identity to pin the receipt to.
var errDeviceRequired = errors.New("X-Device-UUID header required")

type VotingHandler struct {
	elections *store.ElectionStore
	receipts  *store.ReceiptStore
	cfg       cliparse.Config
}

func NewVotingHandler(elections *store.ElectionStore, receipts *store.ReceiptStore, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{elections: elections, receipts: receipts, cfg: cfg}
}

// GetBallot handles GET /elections/{id}/ballot
// Returns the voter-facing view: candidates without tallies.
func (h *VotingHandler) GetBallot(w http.ResponseWriter, r *http.Request) {
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

	candidates := make([]models.BallotCandidate, 0, len(e.Candidates))
	for _, c := range e.Candidates {
		candidates = append(candidates, models.BallotCandidate{ID: c.ID, Name: c.Name})
	}

	middleware.JSONResponse(w, http.StatusOK, models.BallotViewResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Status:       e.Status,
		RequiresCode: e.RequireCodes,
		Candidates:   candidates,
	})
}

// CastVote handles POST /elections/{id}/votes
//
// Eligibility is a single-use code (code-gated elections) or the absence
// of a device receipt (X-Device-UUID header). The counter increment,
// ballot append and code flip are applied in memory and persisted as one
// document write; no failure path leaves partial state.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	id := idgen.Normalize(r.PathValue("id"))
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election ID is required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	deviceUUID := r.Header.Get("X-Device-UUID")

	var ballot *models.Ballot
	var results models.Results
	err := h.elections.Update(func(all map[string]*models.Election) (bool, error) {
		e, ok := all[id]
		if !ok {
			return false, errNotFound
		}

		hasReceipt := false
		if !e.RequireCodes {
			if deviceUUID == "" {
				return false, errDeviceRequired
			}
			_, hasReceipt = h.receipts.Get(e.ID, deviceUUID)
		}

		b, err := election.CastVote(e, election.Vote{
			CandidateID: req.CandidateID,
			Code:        req.Code,
			VoterName:   req.VoterName,
		}, hasReceipt, time.Now())
		if err != nil {
			return false, err
		}

		ballot = b
		results = election.Results(e)
		return true, nil
	})

	if err != nil {
		h.rejectVote(w, id, err)
		return
	}

	if ballot.Via == models.ViaDevice {
		receipt := models.Receipt{At: ballot.At, VoterName: ballot.VoterName}
		if err := h.receipts.Set(id, deviceUUID, receipt); err != nil {
			// The vote itself is recorded; a lost receipt only weakens the
			// already best-effort duplicate gate.
			slog.Warn("failed to write device receipt", "election_id", id, "error", err)
		}
	}

	metrics.VotesCast.WithLabelValues(ballot.Via).Inc()
	slog.Info("vote recorded", "election_id", id, "ballot_id", ballot.ID, "via", ballot.Via)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		BallotID: ballot.ID,
		Message:  "Vote recorded",
		Results:  results,
	})
}

// rejectVote maps casting errors to HTTP statuses and counts the refusal.
func (h *VotingHandler) rejectVote(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, errNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}
	if errors.Is(err, errDeviceRequired) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	status, reason := castErrorStatus(err)
	if status == http.StatusInternalServerError {
		slog.Error("failed to cast vote", "election_id", id, "error", err)
		middleware.ErrorResponse(w, status, "Failed to cast vote")
		return
	}

	metrics.VotesRejected.WithLabelValues(reason).Inc()
	slog.Info("vote rejected", "election_id", id, "reason", reason)
	middleware.ErrorResponse(w, status, err.Error())
}

func castErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, election.ErrNotOpen):
		return http.StatusConflict, "not_open"
	case errors.Is(err, election.ErrNoSelection):
		return http.StatusBadRequest, "no_selection"
	case errors.Is(err, election.ErrMissingCode):
		return http.StatusBadRequest, "missing_code"
	case errors.Is(err, election.ErrInvalidCode):
		return http.StatusForbidden, "invalid_code"
	case errors.Is(err, election.ErrCodeUsed):
		return http.StatusConflict, "code_used"
	case errors.Is(err, election.ErrAlreadyVoted):
		return http.StatusConflict, "already_voted"
	case errors.Is(err, election.ErrCandidateNotFound):
		return http.StatusBadRequest, "candidate_not_found"
	}
	return http.StatusInternalServerError, "internal"
}
