// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements the core rules: creation, lifecycle, ballot
casting, and tallying. Everything here is pure in-memory mutation over
models.Election; persistence is the caller's job, so that one logical
operation maps to one store write.

# Lifecycle

Elections are draft → open → closed, but deliberately not one-way: a host
may re-open a closed election. Only repeating the current state is refused,
and then with a warning-grade error (ErrAlreadyOpen, ErrAlreadyClosed).

CheckAutoClose sweeps a snapshot and closes open elections past their
deadline. It is idempotent and reports whether anything changed.

# Casting

CastVote enforces, in order: the election is open, a candidate was chosen,
the voter is eligible (a fresh single-use code, or no prior device
receipt), and the candidate exists. Success increments the counter,
appends an audit ballot, and flips the code — one in-memory unit. Failure
of any check leaves the election untouched.

Eligibility is best-effort by design: receipts vanish with the device
identity, and codes are not bound to a person. That is the documented
contract for informal polls and must not be silently hardened.

# Tallies

Results (candidate order) and SortedResults (votes descending) are
read-only projections over the candidate counters. The ballot log is an
audit trail, never a tally input; CastVote keeps the two consistent.
*/
package election
