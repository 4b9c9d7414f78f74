// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers.

Handlers are plain structs built with constructor injection: the store,
session registry, and hub are passed in rather than reached for as
globals.

  - AuthHandler: login against the shared admin password, token verify,
    logout
  - WaitlistHandler: public signup submission, admin list and delete
  - EventsHandler: the /ws live update channel

Submission validates in a fixed order (blank check, email shape,
duplicate check) before touching the store, and only broadcasts after
the row is committed. Admin endpoints require a valid bearer session
token. A duplicate signup answers 409, which the landing page treats
as success.
*/
package handlers
