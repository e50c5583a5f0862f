// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

// Package session implements cookie-backed admin sessions: opaque tokens
// persisted in the database with lazy expiry, plus the middleware that
// gates admin routes.
package session

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ikowalczyk/cvfolio/internal/auth"
	"github.com/ikowalczyk/cvfolio/internal/model"
	"github.com/ikowalczyk/cvfolio/internal/store"
)

// CookieName is the session cookie carrying the opaque token.
const CookieName = "cv_admin_session"

// DefaultTTL is the session lifetime used when none is configured.
const DefaultTTL = 24 * time.Hour

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyAdmin holds the authenticated admin in the request context.
const ContextKeyAdmin ContextKey = "admin"

// ErrUnauthorized signals a missing, invalid, or expired session.
var ErrUnauthorized = errors.New("unauthorized")

// Manager creates, validates, and destroys admin sessions.
type Manager struct {
	queries *store.Queries
	ttl     time.Duration
	secure  bool // Secure cookie attribute; enabled outside development
}

// NewManager creates a session manager.
// TTL values <= 0 fall back to DefaultTTL.
func NewManager(db *sql.DB, ttl time.Duration, secure bool) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		queries: store.New(db),
		ttl:     ttl,
		secure:  secure,
	}
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Authenticate verifies a username/password pair against the credential
// store. The username is normalized (trimmed, lowercased) before lookup.
// It fails closed: a missing account and a wrong password are both reported
// as a plain nil, never distinguished.
func (m *Manager) Authenticate(ctx context.Context, username, password string) (*model.AdminUser, error) {
	normalized := strings.ToLower(strings.TrimSpace(username))

	admin, err := m.queries.GetAdminByUsername(ctx, normalized)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Debug("login attempt for unknown admin", "username", normalized)
			return nil, nil
		}
		return nil, err
	}

	valid, err := auth.CheckPassword(password, admin.PasswordHash)
	if err != nil {
		slog.Error("password check error", "error", err)
		return nil, nil
	}
	if !valid {
		slog.Debug("invalid password attempt", "username", normalized)
		return nil, nil
	}

	return &admin, nil
}

// Create persists a new session for the admin and sets the session cookie.
// Returns the opaque token.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, adminID int64) (string, error) {
	token := uuid.NewString()
	expiresAt := time.Now().Add(m.ttl)

	if _, err := m.queries.CreateSession(ctx, token, adminID, expiresAt); err != nil {
		return "", err
	}

	http.SetCookie(w, m.cookie(token, expiresAt))
	slog.Info("session created", "admin_id", adminID)
	return token, nil
}

// Current resolves the session cookie to its owning admin.
// Returns nil without error when no valid session exists. A cookie pointing
// at a missing row is cleared; an expired row is deleted and cleared (lazy
// expiry — there is no renewal path, and a second read of the same token
// deterministically finds nothing).
func (m *Manager) Current(ctx context.Context, w http.ResponseWriter, r *http.Request) (*model.AdminUser, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil, nil
	}
	token := c.Value

	sess, err := m.queries.GetSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			m.clearCookie(w)
			return nil, nil
		}
		return nil, err
	}

	if sess.Expired(time.Now()) {
		if err := m.queries.DeleteSessionsByToken(ctx, token); err != nil {
			slog.Error("deleting expired session", "error", err)
		}
		m.clearCookie(w)
		return nil, nil
	}

	admin, err := m.queries.GetAdminByID(ctx, sess.AdminUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Orphaned session; the owning account is gone.
			_ = m.queries.DeleteSessionsByToken(ctx, token)
			m.clearCookie(w)
			return nil, nil
		}
		return nil, err
	}

	return &admin, nil
}

// Destroy deletes every session row matching the current cookie's token and
// clears the cookie regardless of whether a row existed. Idempotent.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	defer m.clearCookie(w)

	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	return m.queries.DeleteSessionsByToken(ctx, c.Value)
}

// RequireAdmin creates middleware that requires a valid admin session.
// Unauthenticated API requests get a 401 JSON error; page loads are
// redirected to the login entry point. The admin is stored in the request
// context for handlers downstream.
func (m *Manager) RequireAdmin(loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, err := m.Current(r.Context(), w, r)
			if err != nil {
				slog.Error("session lookup failed", "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			if admin == nil {
				if wantsJSON(r) {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = w.Write([]byte(`{"error":{"code":"unauthorized","message":"Authentication required"}}`))
					return
				}
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdmin, *admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext retrieves the authenticated admin from the request context.
// Returns nil if no admin is present.
func AdminFromContext(ctx context.Context) *model.AdminUser {
	admin, ok := ctx.Value(ContextKeyAdmin).(model.AdminUser)
	if !ok {
		return nil
	}
	return &admin
}

// wantsJSON reports whether the request targets the JSON API surface.
func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

func (m *Manager) cookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	}
}

func (m *Manager) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	})
}
