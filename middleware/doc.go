// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

# Request Wrapping

WithLogging wraps a handler with slog request/completion logging and feeds
the sanitized endpoint, method, status and duration into the Prometheus
request histogram. CORS allows browser clients on other origins and
answers preflight requests.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
	err := middleware.ParseJSONBody(r, &req)

ErrorResponse renders models.ErrorResponse with the standard status text
and a human-readable message.

# Client Identity

GetClientIP resolves the caller address through X-Forwarded-For and
X-Real-IP before falling back to RemoteAddr. It is used for request
logging only; the service has no notion of authenticated identity.
*/
package middleware
