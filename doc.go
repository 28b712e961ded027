// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the QuickVote API server.

QuickVote is a lightweight election service for informal polls: a host
creates an election with candidates and optional single-use voter codes,
voters cast one ballot each, and anyone holding the short election ID can
watch live tallies.

# Starting the Server

The server runs from a single SQLite file by default:

	go run main.go

Or against Postgres:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

A .env file in the working directory is loaded if present.

# Configuration

Optional settings (flags win over env):

  - PORT (-p): server port (default: 3327)
  - DATABASE_URL (-d): connection string or sqlite file path (default: quickvote.db)
  - DATABASE_TYPE (-t): sqlite, postgres or memory (default: sqlite)
  - AUTOCLOSE_INTERVAL (-autoclose-interval): deadline sweep period (default: 30s)
  - BASE_URL (-base-url): public base URL for share links

# Architecture

The server uses a handler-based architecture with dependency injection:

  - election: core rules (creation, lifecycle, casting, tallies)
  - store: whole-document JSON persistence over a key-value table
  - scheduler: cancellable auto-close sweep
  - handlers: HTTP request handlers (elections, voting, results, export)
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, CORS, JSON helpers
  - metrics: Prometheus collectors
  - models: request/response and domain types
  - idgen: short ID and voter code generation
  - share: view:electionID deep links
  - client: typed API client used by cmd/qvlink
  - cliparse: configuration parsing

There is intentionally no authentication layer: eligibility is a
single-use code or a best-effort device receipt, and that weak guarantee
is the documented contract for the informal polls this serves.

See package documentation for each component.
*/
package main
