// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ method routing.

NewRouter wires the handler constructors to their paths and wraps every
API route with request logging. Utility endpoints:

	GET /health  → liveness probe
	GET /metrics → Prometheus collectors
	GET /        → API banner

All state flows through the store passed in; the router holds none.
*/
package router
