// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ikowalczyk/cvfolio/internal/middleware"
	"github.com/ikowalczyk/cvfolio/internal/session"
)

// AuthHandler serves admin login, logout, and identity endpoints.
type AuthHandler struct {
	sessions   *session.Manager
	protection *middleware.LoginProtection
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(sessions *session.Manager, protection *middleware.LoginProtection) *AuthHandler {
	return &AuthHandler{sessions: sessions, protection: protection}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Username string `json:"username"`
}

// Login authenticates the admin and issues a session cookie. Bad
// credentials answer 401 without revealing whether the account exists.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" || req.Password == "" {
		WriteBadRequest(w, "Username and password are required", nil)
		return
	}

	if locked, remaining := h.protection.IsAccountLocked(username); locked {
		WriteError(w, http.StatusTooManyRequests, "account_locked",
			fmt.Sprintf("Account locked, try again in %s", remaining.Round(time.Second)), nil)
		return
	}

	admin, err := h.sessions.Authenticate(r.Context(), username, req.Password)
	if err != nil {
		slog.Error("login failed", "error", err, "category", "auth")
		WriteInternalError(w, "Login failed")
		return
	}
	if admin == nil {
		if locked, duration := h.protection.RecordFailedAttempt(username); locked {
			slog.Warn("admin login locked out", "username", username, "duration", duration, "category", "auth")
			WriteError(w, http.StatusTooManyRequests, "account_locked",
				fmt.Sprintf("Account locked, try again in %s", duration.Round(time.Second)), nil)
			return
		}
		WriteUnauthorized(w, "Invalid username or password")
		return
	}

	h.protection.RecordSuccessfulLogin(username)
	if _, err := h.sessions.Create(r.Context(), w, admin.ID); err != nil {
		slog.Error("creating session failed", "error", err, "category", "auth")
		WriteInternalError(w, "Login failed")
		return
	}

	slog.Info("admin logged in", "username", admin.Username, "category", "auth")
	WriteSuccess(w, loginResponse{Username: admin.Username}, nil)
}

// Logout destroys the current session and clears the cookie. Idempotent:
// a request without a valid session still succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("logout failed", "error", err, "category", "auth")
		WriteInternalError(w, "Logout failed")
		return
	}
	WriteSuccess(w, map[string]bool{"logged_out": true}, nil)
}

// Me returns the authenticated admin's identity. It sits behind the
// session middleware, so reaching it implies a valid session.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	admin := session.AdminFromContext(r.Context())
	if admin == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}
	WriteSuccess(w, loginResponse{Username: admin.Username}, nil)
}
