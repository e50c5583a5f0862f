// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

// Package model defines domain models shared between the store and the
// HTTP layer: the admin user, session records, and the CV content entities.
package model

import (
	"time"
)

// AdminUser represents an administrator account. Accounts are created by the
// seeding step; the only mutation supported at runtime is password rotation.
type AdminUser struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose in JSON
}

// Session represents a login instance. One token maps to exactly one admin;
// an admin may hold several concurrent sessions.
type Session struct {
	ID          int64     `json:"id"`
	Token       string    `json:"-"`
	AdminUserID int64     `json:"admin_user_id"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
