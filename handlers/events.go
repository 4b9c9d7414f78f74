// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/atelier-ongle/waitlist-server/hub"
	"github.com/atelier-ongle/waitlist-server/models"
	"github.com/atelier-ongle/waitlist-server/store"
)

type EventsHandler struct {
	store    *store.Store
	hub      *hub.Hub
	upgrader websocket.Upgrader
}

func NewEventsHandler(st *store.Store, h *hub.Hub) *EventsHandler {
	return &EventsHandler{
		store: st,
		hub:   h,
		upgrader: websocket.Upgrader{
			// The landing page and dev server run on other origins;
			// subscribers are anonymous anyway.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Subscribe handles GET /ws
// Upgrades the connection, queues the init event, registers the client
// for broadcasts, then blocks until the peer goes away.
func (h *EventsHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	count, err := h.store.Count()
	if err != nil {
		slog.Error("failed to count registrations for init event", "error", err)
		conn.Close()
		return
	}

	client := hub.NewClient()

	// Queue init before registering so it always precedes any broadcast
	// in the client's outbound order.
	payload, err := json.Marshal(models.InitEvent(count))
	if err != nil {
		slog.Error("failed to encode init event", "error", err)
		conn.Close()
		return
	}
	client.Send(payload)

	h.hub.Register(client)

	go h.writeLoop(client, conn)
	h.readLoop(client, conn)
}

// writeLoop is the connection's single writer: it drains the client's
// outbound queue, preserving broadcast order for this connection.
func (h *EventsHandler) writeLoop(client *hub.Client, conn *websocket.Conn) {
	for payload := range client.Outbound() {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			// Closing the conn unblocks readLoop, which unregisters.
			conn.Close()
			return
		}
	}
	conn.Close()
}

// readLoop blocks until the peer closes or errors, then unregisters
// the client. Inbound messages are ignored; the channel is one-way.
func (h *EventsHandler) readLoop(client *hub.Client, conn *websocket.Conn) {
	defer func() {
		h.hub.Unregister(client)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
