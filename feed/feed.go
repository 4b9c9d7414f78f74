// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/atelier-ongle/waitlist-server/models"
)

const (
	// DefaultReconnectDelay is the fixed pause between connection
	// attempts. There is no retry limit and no backoff growth.
	DefaultReconnectDelay = 2 * time.Second

	// DefaultHighlightDuration is how long a fresh registration stays
	// marked as recent before the mark clears.
	DefaultHighlightDuration = 3 * time.Second
)

// Client is a reconnecting subscriber to the live update channel. It
// keeps the same view the admin dashboard renders: an ordered list of
// registrations, the total count, and a short-lived "recent" mark on
// newly arrived ids.
type Client struct {
	URL               string
	ReconnectDelay    time.Duration
	HighlightDuration time.Duration

	mu            sync.Mutex
	registrations []models.Registration
	count         int
	recent        map[int64]*time.Timer
	connected     bool
}

func NewClient(url string) *Client {
	return &Client{
		URL:               url,
		ReconnectDelay:    DefaultReconnectDelay,
		HighlightDuration: DefaultHighlightDuration,
		recent:            make(map[int64]*time.Timer),
	}
}

// Run dials the channel and applies events until ctx is done,
// reconnecting after every disconnect, forever.
func (c *Client) Run(ctx context.Context) {
	for {
		if err := c.connectOnce(ctx); err != nil && ctx.Err() == nil {
			slog.Warn("event channel disconnected", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.ReconnectDelay):
		}
	}
}

func (c *Client) connectOnce(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.URL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Drop the connection when ctx ends so the read below unblocks.
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	c.setConnected(true)
	defer c.setConnected(false)

	for {
		var event models.Event
		if err := conn.ReadJSON(&event); err != nil {
			return err
		}
		c.Apply(event)
	}
}

// Apply folds one event into the local view.
func (c *Client) Apply(event models.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch event.Type {
	case models.EventInit:
		c.count = event.Count

	case models.EventNewRegistration:
		if event.Registration == nil {
			return
		}
		c.registrations = append([]models.Registration{*event.Registration}, c.registrations...)
		c.count = event.Count
		c.markRecent(event.Registration.ID)

	case models.EventDeleteRegistration:
		kept := make([]models.Registration, 0, len(c.registrations))
		for _, reg := range c.registrations {
			if reg.ID != event.ID {
				kept = append(kept, reg)
			}
		}
		c.registrations = kept
		c.count = event.Count
	}
}

// Seed replaces the local view, typically from a GET /api/waitlist
// response fetched alongside the initial connect.
func (c *Client) Seed(registrations []models.Registration, count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registrations = append([]models.Registration(nil), registrations...)
	c.count = count
}

// markRecent flags an id and schedules the flag to clear after the
// highlight window. Caller holds mu.
func (c *Client) markRecent(id int64) {
	if timer, ok := c.recent[id]; ok {
		timer.Stop()
	}
	c.recent[id] = time.AfterFunc(c.HighlightDuration, func() {
		c.mu.Lock()
		delete(c.recent, id)
		c.mu.Unlock()
	})
}

// IsRecent reports whether the id arrived within the highlight window.
func (c *Client) IsRecent(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.recent[id]
	return ok
}

// Registrations returns a copy of the current ordered view.
func (c *Client) Registrations() []models.Registration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Registration(nil), c.registrations...)
}

// Count returns the last observed registration count.
func (c *Client) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Connected reports whether the client currently holds an open
// connection.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *Client) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
}
