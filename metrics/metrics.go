// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collectors for the QuickVote server, registered once at package load.
var (
	ElectionsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quickvote_elections_created_total",
		Help: "Total elections created.",
	})

	VotesCast = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quickvote_votes_cast_total",
		Help: "Total ballots accepted, by eligibility channel.",
	}, []string{"via"})

	VotesRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quickvote_votes_rejected_total",
		Help: "Total casting attempts refused, by reason.",
	}, []string{"reason"})

	ElectionsAutoClosed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quickvote_elections_autoclosed_total",
		Help: "Total elections closed by the deadline sweep.",
	})

	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quickvote_request_duration_seconds",
		Help:    "HTTP request duration in seconds, by endpoint, method and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "method", "status"})
)

func init() {
	prometheus.MustRegister(
		ElectionsCreated,
		VotesCast,
		VotesRejected,
		ElectionsAutoClosed,
		RequestDuration,
	)
}

// ObserveRequest records one served request. endpoint must already be
// sanitized (no raw election IDs) to keep label cardinality bounded.
func ObserveRequest(endpoint, method string, status int, d time.Duration) {
	RequestDuration.WithLabelValues(endpoint, method, strconv.Itoa(status)).Observe(d.Seconds())
}
