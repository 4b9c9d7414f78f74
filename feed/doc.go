// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package feed implements the subscriber side of the live update channel.

A feed.Client mirrors what the admin dashboard does in the browser: it
seeds its count from the init event, prepends on new_registration,
removes on delete_registration, and marks new ids as recent for a fixed
highlight window (3s). On disconnect it waits a fixed delay (2s) and
dials again, indefinitely.

	c := feed.NewClient("ws://localhost:3001/ws")
	go c.Run(ctx)
	...
	c.Count()
	c.Registrations()
	c.IsRecent(id)
*/
package feed
