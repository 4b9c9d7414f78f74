// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the HTTP routes using Go 1.22+ method patterns.

Routes:

	GET  /health                    liveness check
	POST /api/auth/login            admin login, returns a session token
	POST /api/auth/verify           reports whether a token is valid
	POST /api/auth/logout           revokes a token
	POST /api/waitlist              public signup submission
	GET  /api/waitlist              admin: list registrations + count
	DELETE /api/waitlist/{id}       admin: remove a registration
	GET  /ws                        websocket live update channel

The whole mux is wrapped in the CORS middleware; every handler except
the websocket upgrade is wrapped in request logging.
*/
package router
