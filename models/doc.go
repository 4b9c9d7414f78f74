// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the shared request, response, and domain types.

# Registrations

A Registration is one waitlist signup: an assigned integer id, the
normalized email address, the creation time, and (optionally) the
originating network address.

# Live Events

The websocket channel carries a closed set of event payloads:

  - init: sent once to a subscriber right after it connects, carrying
    the current registration count
  - new_registration: broadcast after a signup, carrying the new record
    and the updated count
  - delete_registration: broadcast after an admin delete, carrying the
    removed id and the updated count

Always build events through InitEvent, NewRegistrationEvent, and
DeleteRegistrationEvent; consumers switch on Event.Type.
*/
package models
