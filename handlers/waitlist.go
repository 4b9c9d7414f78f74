// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/atelier-ongle/waitlist-server/hub"
	"github.com/atelier-ongle/waitlist-server/middleware"
	"github.com/atelier-ongle/waitlist-server/models"
	"github.com/atelier-ongle/waitlist-server/session"
	"github.com/atelier-ongle/waitlist-server/store"
)

// emailPattern accepts local@domain.tld shaped addresses: no whitespace
// or extra @ in any segment, and at least one dot after the @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type WaitlistHandler struct {
	store    *store.Store
	sessions *session.Registry
	hub      *hub.Hub
}

func NewWaitlistHandler(st *store.Store, sessions *session.Registry, h *hub.Hub) *WaitlistHandler {
	return &WaitlistHandler{store: st, sessions: sessions, hub: h}
}

// Submit handles POST /api/waitlist
//
// A 409 for an already-registered email is benign: the landing page
// treats it the same as a fresh signup, so it never becomes a hard
// failure for the visitor.
func (h *WaitlistHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRegistrationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email is required")
		return
	}
	if !emailPattern.MatchString(email) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	normalized := strings.ToLower(email)

	exists, err := h.store.ExistsByEmail(normalized)
	if err != nil {
		slog.Error("failed to check email", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if exists {
		middleware.ErrorResponse(w, http.StatusConflict, "Email already registered")
		return
	}

	var ip *string
	if addr := middleware.GetClientIP(r); addr != "" {
		ip = &addr
	}

	reg, err := h.store.Insert(normalized, ip)
	if errors.Is(err, store.ErrDuplicateEmail) {
		// Lost the race against a concurrent signup for the same address
		middleware.ErrorResponse(w, http.StatusConflict, "Email already registered")
		return
	}
	if err != nil {
		slog.Error("failed to insert registration", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	count, err := h.store.Count()
	if err != nil {
		slog.Error("failed to count registrations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// The row is committed; fan-out is best-effort and never rolls it back.
	h.hub.Broadcast(models.NewRegistrationEvent(reg, count))

	slog.Info("new registration", "id", reg.ID, "email", reg.Email)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitRegistrationResponse{
		Success:      true,
		Registration: reg,
	})
}

// List handles GET /api/waitlist (admin only)
func (h *WaitlistHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	registrations, err := h.store.ListAll()
	if err != nil {
		slog.Error("failed to list registrations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	count, err := h.store.Count()
	if err != nil {
		slog.Error("failed to count registrations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListRegistrationsResponse{
		Registrations: registrations,
		Count:         count,
	})
}

// Delete handles DELETE /api/waitlist/{id} (admin only)
func (h *WaitlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid registration id")
		return
	}

	removed, err := h.store.DeleteByID(id)
	if err != nil {
		slog.Error("failed to delete registration", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !removed {
		middleware.ErrorResponse(w, http.StatusNotFound, "Registration not found")
		return
	}

	count, err := h.store.Count()
	if err != nil {
		slog.Error("failed to count registrations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.hub.Broadcast(models.DeleteRegistrationEvent(id, count))

	slog.Info("registration deleted", "id", id)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

func (h *WaitlistHandler) authorized(r *http.Request) bool {
	token := middleware.BearerToken(r)
	return token != "" && h.sessions.IsValid(token)
}
