// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ikowalczyk/cvfolio/internal/auth"
)

// SeedAdmin ensures the admin account matches the configured bootstrap
// credentials. The username is normalized before storage so login lookups
// are case-insensitive. An existing account gets its password hash rotated,
// which makes credential rotation a config change plus a restart.
func SeedAdmin(ctx context.Context, db *sql.DB, username, password string) error {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return errors.New("admin credentials are not configured")
	}

	queries := New(db)

	existing, err := queries.GetAdminByUsername(ctx, username)
	exists := err == nil
	if exists {
		ok, checkErr := auth.CheckPassword(password, existing.PasswordHash)
		if checkErr == nil && ok && !auth.NeedsRehash(existing.PasswordHash) {
			return nil
		}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for admin account: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	if exists {
		if err := queries.UpdateAdminPassword(ctx, existing.ID, hash); err != nil {
			return fmt.Errorf("rotating admin password: %w", err)
		}
		slog.Info("admin password rotated", "id", existing.ID, "username", existing.Username)
		return nil
	}

	admin, err := queries.UpsertAdmin(ctx, username, hash)
	if err != nil {
		return fmt.Errorf("seeding admin account: %w", err)
	}

	slog.Info("admin account seeded", "id", admin.ID, "username", admin.Username)
	return nil
}
