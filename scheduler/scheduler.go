// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/quickvote/quickvote/election"
	"github.com/quickvote/quickvote/metrics"
	"github.com/quickvote/quickvote/models"
	"github.com/quickvote/quickvote/store"
)

// AutoCloser periodically sweeps the store and closes open elections whose
// deadline has passed. It is a polling design: the store has no change
// notification, and the election count is small.
type AutoCloser struct {
	elections *store.ElectionStore
	interval  time.Duration
	now       func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// NewAutoCloser builds a sweeper over the given store. now is the clock
// source; pass time.Now outside of tests.
func NewAutoCloser(elections *store.ElectionStore, interval time.Duration, now func() time.Time) *AutoCloser {
	return &AutoCloser{
		elections: elections,
		interval:  interval,
		now:       now,
	}
}

// Start launches the sweep loop. The loop stops when ctx is cancelled or
// Stop is called.
func (a *AutoCloser) Start(ctx context.Context) {
	ctx, a.cancel = context.WithCancel(ctx)
	a.done = make(chan struct{})

	go func() {
		defer close(a.done)
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				a.Sweep()
			}
		}
	}()
}

// Stop cancels the loop and waits for the in-flight sweep, if any.
func (a *AutoCloser) Stop() {
	if a.cancel == nil {
		return
	}
	a.cancel()
	<-a.done
}

// Sweep runs one auto-close pass and persists only when something closed.
// Safe to call repeatedly; a pass that closes nothing writes nothing.
func (a *AutoCloser) Sweep() {
	closed := 0
	err := a.elections.Update(func(all map[string]*models.Election) (bool, error) {
		now := a.now()
		for _, e := range all {
			wasOpen := e.Status == models.StatusOpen
			if wasOpen && e.AutoCloseAt != nil && !e.AutoCloseAt.After(now) {
				closed++
			}
		}
		return election.CheckAutoClose(all, now), nil
	})
	if err != nil {
		slog.Error("auto-close sweep failed", "error", err)
		return
	}
	if closed > 0 {
		metrics.ElectionsAutoClosed.Add(float64(closed))
		slog.Info("elections auto-closed", "count", closed)
	}
}
