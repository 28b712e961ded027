// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with
environment variable fallbacks.

Flags and their environment equivalents:

  - -p / PORT: server port (default 3327)
  - -d / DATABASE_URL: database URL, or file path for sqlite (default quickvote.db)
  - -t / DATABASE_TYPE: sqlite, postgres or memory (default sqlite)
  - -autoclose-interval / AUTOCLOSE_INTERVAL: deadline sweep period (default 30s)
  - -base-url / BASE_URL: public base URL embedded in share links

Flags win over environment variables; defaults apply last. The memory
database type needs no URL and loses all state on restart.
*/
package cliparse
