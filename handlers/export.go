// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/quickvote/quickvote/cliparse"
	"github.com/quickvote/quickvote/idgen"
	"github.com/quickvote/quickvote/middleware"
	"github.com/quickvote/quickvote/store"
)

type ExportHandler struct {
	elections *store.ElectionStore
	cfg       cliparse.Config
}

func NewExportHandler(elections *store.ElectionStore, cfg cliparse.Config) *ExportHandler {
	return &ExportHandler{elections: elections, cfg: cfg}
}

// CodesCSV handles GET /elections/{id}/codes.csv
// Streams the voter code sheet: code,used,usedBy,usedAt. Codes are sorted
// so repeated exports diff cleanly.
func (h *ExportHandler) CodesCSV(w http.ResponseWriter, r *http.Request) {
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

	if !e.RequireCodes {
		middleware.ErrorResponse(w, http.StatusConflict, "This election has no voter codes")
		return
	}

	codes := make([]string, 0, len(e.VoterCodes))
	for code := range e.VoterCodes {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="quickvote_`+e.ID+`_codes.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"code", "used", "usedBy", "usedAt"})
	for _, code := range codes {
		state := e.VoterCodes[code]
		usedAt := ""
		if state.UsedAt != nil {
			usedAt = state.UsedAt.Format(time.RFC3339)
		}
		_ = cw.Write([]string{code, strconv.FormatBool(state.Used), state.UsedBy, usedAt})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("failed to stream codes CSV", "election_id", id, "error", err)
	}
}
