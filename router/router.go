// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quickvote/quickvote/cliparse"
	"github.com/quickvote/quickvote/handlers"
	"github.com/quickvote/quickvote/middleware"
	"github.com/quickvote/quickvote/store"
)

func NewRouter(elections *store.ElectionStore, receipts *store.ReceiptStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	electionHandler := handlers.NewElectionHandler(elections, cfg)
	votingHandler := handlers.NewVotingHandler(elections, receipts, cfg)
	resultsHandler := handlers.NewResultsHandler(elections, cfg)
	exportHandler := handlers.NewExportHandler(elections, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Election management (host operations)
	mux.HandleFunc("POST /elections", middleware.WithLogging(electionHandler.Create))
	mux.HandleFunc("GET /elections/{id}", middleware.WithLogging(electionHandler.Get))
	mux.HandleFunc("POST /elections/{id}/open", middleware.WithLogging(electionHandler.Open))
	mux.HandleFunc("POST /elections/{id}/close", middleware.WithLogging(electionHandler.Close))

	// Voting operations (public)
	mux.HandleFunc("GET /elections/{id}/ballot", middleware.WithLogging(votingHandler.GetBallot))
	mux.HandleFunc("POST /elections/{id}/votes", middleware.WithLogging(votingHandler.CastVote))

	// Results and exports (public)
	mux.HandleFunc("GET /elections/{id}/results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /elections/{id}/codes.csv", middleware.WithLogging(exportHandler.CodesCSV))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickvote API v1"))
	})

	return mux
}
