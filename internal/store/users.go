// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"time"

	"github.com/ikowalczyk/cvfolio/internal/model"
)

// GetAdminByUsername looks up an admin account by its normalized username.
func (q *Queries) GetAdminByUsername(ctx context.Context, username string) (model.AdminUser, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash FROM admin_users WHERE username = ?`, username)
	var u model.AdminUser
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash)
	return u, err
}

// GetAdminByID looks up an admin account by id.
func (q *Queries) GetAdminByID(ctx context.Context, id int64) (model.AdminUser, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash FROM admin_users WHERE id = ?`, id)
	var u model.AdminUser
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash)
	return u, err
}

// UpsertAdmin creates the admin account or rotates its password hash.
func (q *Queries) UpsertAdmin(ctx context.Context, username, passwordHash string) (model.AdminUser, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO admin_users (username, password_hash) VALUES (?, ?)
		ON CONFLICT(username) DO UPDATE SET password_hash = excluded.password_hash
		RETURNING id, username, password_hash`,
		username, passwordHash)
	var u model.AdminUser
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash)
	return u, err
}

// UpdateAdminPassword rotates the stored password hash for an account.
func (q *Queries) UpdateAdminPassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE admin_users SET password_hash = ? WHERE id = ?`, passwordHash, id)
	return err
}

// CreateSession persists a new session row.
func (q *Queries) CreateSession(ctx context.Context, token string, adminUserID int64, expiresAt time.Time) (model.Session, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO sessions (token, admin_user_id, expires_at) VALUES (?, ?, ?)
		RETURNING id, token, admin_user_id, expires_at`,
		token, adminUserID, expiresAt.UTC())
	var s model.Session
	err := row.Scan(&s.ID, &s.Token, &s.AdminUserID, &s.ExpiresAt)
	return s, err
}

// GetSessionByToken looks up a session row by its opaque token.
func (q *Queries) GetSessionByToken(ctx context.Context, token string) (model.Session, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT id, token, admin_user_id, expires_at FROM sessions WHERE token = ?`, token)
	var s model.Session
	err := row.Scan(&s.ID, &s.Token, &s.AdminUserID, &s.ExpiresAt)
	return s, err
}

// DeleteSessionsByToken removes every session row carrying the token.
// Matching by token rather than id also cleans up duplicates.
func (q *Queries) DeleteSessionsByToken(ctx context.Context, token string) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	return err
}

// DeleteExpiredSessions removes every session row that expired at or before now.
// Returns the number of rows removed.
func (q *Queries) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CountSessions returns the number of session rows matching the token.
func (q *Queries) CountSessions(ctx context.Context, token string) (int64, error) {
	row := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions WHERE token = ?`, token)
	var n int64
	err := row.Scan(&n)
	return n, err
}
