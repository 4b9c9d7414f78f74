// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/atelier-ongle/waitlist-server/cliparse"
	"github.com/atelier-ongle/waitlist-server/handlers"
	"github.com/atelier-ongle/waitlist-server/hub"
	"github.com/atelier-ongle/waitlist-server/middleware"
	"github.com/atelier-ongle/waitlist-server/session"
	"github.com/atelier-ongle/waitlist-server/store"
)

func NewRouter(st *store.Store, sessions *session.Registry, events *hub.Hub, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(sessions, cfg)
	waitlistHandler := handlers.NewWaitlistHandler(st, sessions, events)
	eventsHandler := handlers.NewEventsHandler(st, events)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Admin authentication
	mux.HandleFunc("POST /api/auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /api/auth/verify", middleware.WithLogging(authHandler.Verify))
	mux.HandleFunc("POST /api/auth/logout", middleware.WithLogging(authHandler.Logout))

	// Waitlist (submit is public, list/delete are admin)
	mux.HandleFunc("POST /api/waitlist", middleware.WithLogging(waitlistHandler.Submit))
	mux.HandleFunc("GET /api/waitlist", middleware.WithLogging(waitlistHandler.List))
	mux.HandleFunc("DELETE /api/waitlist/{id}", middleware.WithLogging(waitlistHandler.Delete))

	// Live updates (long-lived; logs its own connect/disconnect)
	mux.HandleFunc("GET /ws", eventsHandler.Subscribe)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("waitlist API v1"))
	})

	return middleware.CORS(mux)
}
