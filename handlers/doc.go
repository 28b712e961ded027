// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the QuickVote API.

# Handler Types

Each handler is a struct holding its store and config dependencies:

  - ElectionHandler: creation and lifecycle (create, host view, open, close)
  - VotingHandler: ballot view and vote casting
  - ResultsHandler: public sorted results
  - ExportHandler: voter code CSV export

Handlers are created via constructor functions:

	electionHandler := handlers.NewElectionHandler(elections, cfg)

# Election Lifecycle

Elections progress draft → open → closed, and a host may re-open:

	POST /elections             → Create
	GET  /elections/{id}        → Get (host view: tallies + code counts)
	POST /elections/{id}/open   → Open
	POST /elections/{id}/close  → Close

There is deliberately no admin credential: anyone holding the short
election ID can manage it, matching the informal-poll threat model.

# Voting Flow

	GET  /elections/{id}/ballot → GetBallot (candidates, no tallies)
	POST /elections/{id}/votes  → CastVote

Code-gated elections take the code in the request body; code-less
elections identify the device by the X-Device-UUID header and refuse a
second ballot from the same device.

# Results & Export

	GET /elections/{id}/results   → GetResults (sorted descending)
	GET /elections/{id}/codes.csv → CodesCSV (code,used,usedBy,usedAt)

The host view keeps original candidate order; the public results view
sorts by votes. Both are read-only projections over the same tallies.

All election IDs in paths are trimmed and upper-cased before lookup.
*/
package handlers
