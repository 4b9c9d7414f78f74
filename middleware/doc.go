// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by every handler.

  - WithLogging: per-request start/completion logging via slog
  - JSONResponse / ErrorResponse: JSON encoding with the standard
    error envelope
  - ParseJSONBody: request body decoding
  - BearerToken: "Authorization: Bearer ..." extraction for the admin
    endpoints
  - CORS: permissive cross-origin headers for the landing page dev
    server, including OPTIONS preflight
  - GetClientIP: X-Forwarded-For aware client address extraction
*/
package middleware
