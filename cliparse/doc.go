// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with
environment variable fallback.

Settings:

  - PORT (-p): server port (default: 3001)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - DATABASE_URL (-d): postgres connection string, or the sqlite file
    path (default: waitlist.db)
  - ADMIN_PASSWORD (--admin-password): the shared admin dashboard
    password; required

main also loads a .env file before parsing, so local development can
keep ADMIN_PASSWORD out of the shell history.
*/
package cliparse
