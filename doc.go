// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the waitlist API server.

The server backs the Atelier Ongle landing page: it records waitlist
signups, serves a password-gated admin API, and pushes live updates to
subscribers over a websocket channel.

# Starting the Server

The server reads configuration from a .env file, environment variables,
or CLI flags:

	ADMIN_PASSWORD=... go run main.go

Or with flags:

	go run main.go -p 3001 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - ADMIN_PASSWORD (--admin-password): shared admin dashboard password

Optional settings:

  - PORT (-p): server port (default: 3001)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): sqlite file path (default: waitlist.db) or
    postgres connection string

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, waitlist, events)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types and the event union
  - store: Registration persistence (sqlite or postgres)
  - session: Admin session token registry
  - hub: Live subscriber fan-out
  - feed: A reconnecting subscriber client for the event channel
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
