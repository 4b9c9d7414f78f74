// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hub

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/atelier-ongle/waitlist-server/models"
)

// sendBuffer is the per-client outbound queue depth. A client that
// falls this far behind starts missing events instead of blocking
// everyone else's broadcast.
const sendBuffer = 16

// Client is one live subscriber. The transport layer drains Outbound
// with a single writer, which gives each connection FIFO delivery.
type Client struct {
	id   string
	send chan []byte
	once sync.Once
}

func NewClient() *Client {
	return &Client{
		id:   uuid.NewString(),
		send: make(chan []byte, sendBuffer),
	}
}

// ID returns the client's connection identifier, used in logs.
func (c *Client) ID() string {
	return c.id
}

// Outbound is the queue the transport writer drains. It is closed when
// the client is unregistered.
func (c *Client) Outbound() <-chan []byte {
	return c.send
}

// Send queues a payload for this client only. Reports false when the
// client's queue is full.
func (c *Client) Send(payload []byte) bool {
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

// Hub maintains the set of live subscriber clients and fans events out
// to all of them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func New() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

// Register adds a client to the broadcast set.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()

	slog.Info("subscriber connected", "client_id", c.id, "total", total)
}

// Unregister removes a client and closes its outbound queue. Only the
// transport's close/error path calls this; a slow client is skipped by
// Broadcast, never removed. Safe to call more than once.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, wasRegistered := h.clients[c]
	delete(h.clients, c)
	total := len(h.clients)
	h.mu.Unlock()

	c.once.Do(func() { close(c.send) })

	if wasRegistered {
		slog.Info("subscriber disconnected", "client_id", c.id, "total", total)
	}
}

// Broadcast serializes the event once and queues it for every live
// client. Delivery is best-effort, at most once per client.
func (h *Hub) Broadcast(event models.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to encode event", "type", event.Type, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if !c.Send(payload) {
			slog.Warn("subscriber not keeping up, event skipped", "client_id", c.id, "type", event.Type)
		}
	}
}

// Len returns the number of currently-registered clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
