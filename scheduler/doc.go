// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scheduler runs the auto-close sweep: a cancellable periodic task
that closes open elections past their deadline.

	closer := scheduler.NewAutoCloser(elections, 30*time.Second, time.Now)
	closer.Start(ctx)
	defer closer.Stop()

Each tick loads a snapshot, applies election.CheckAutoClose, and persists
only when a transition happened, so an idle sweep is a pure read. The
sweep is idempotent; overlapping or repeated runs cannot close an
election twice.
*/
package scheduler
