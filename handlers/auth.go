// Copyright (c) 2026 Atelier Ongle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"crypto/hmac"
	"log/slog"
	"net/http"

	"github.com/atelier-ongle/waitlist-server/cliparse"
	"github.com/atelier-ongle/waitlist-server/middleware"
	"github.com/atelier-ongle/waitlist-server/models"
	"github.com/atelier-ongle/waitlist-server/session"
)

type AuthHandler struct {
	sessions *session.Registry
	cfg      cliparse.Config
}

func NewAuthHandler(sessions *session.Registry, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{sessions: sessions, cfg: cfg}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Constant-time compare against the shared admin password
	if !hmac.Equal([]byte(req.Password), []byte(h.cfg.AdminPassword)) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := h.sessions.Issue()
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("admin logged in")

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Success: true,
		Token:   token,
	})
}

// Verify handles POST /api/auth/verify
// Always responds 200; the body reports whether the presented token is
// currently valid.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	valid := token != "" && h.sessions.IsValid(token)

	middleware.JSONResponse(w, http.StatusOK, models.VerifyResponse{Valid: valid})
}

// Logout handles POST /api/auth/logout
// Succeeds even when the token is unknown or absent.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.BearerToken(r); token != "" {
		h.sessions.Revoke(token)
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
