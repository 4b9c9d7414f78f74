// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package hub fans live update events out to subscriber connections.

Each Client owns a buffered outbound queue; the websocket handler's
single writer goroutine drains it, so a connection sees events in the
order they were broadcast. Broadcast serializes an event once, then
does a non-blocking send to every registered client - a client whose
queue is full misses that event but stays registered. Removal happens
only when the transport reports close or error and calls Unregister.

Subscribers are anonymous: no authentication is attached, and every
client receives every broadcast.
*/
package hub
