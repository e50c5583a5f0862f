// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package store_test

import (
	"context"
	"testing"

	"github.com/ikowalczyk/cvfolio/internal/auth"
	"github.com/ikowalczyk/cvfolio/internal/store"
	"github.com/ikowalczyk/cvfolio/internal/testutil"
)

func TestSeedAdminCreates(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	if err := store.SeedAdmin(ctx, db, "Admin", "hunter2-but-longer"); err != nil {
		t.Fatalf("SeedAdmin: %v", err)
	}

	// The username is normalized on the way in.
	admin, err := store.New(db).GetAdminByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetAdminByUsername: %v", err)
	}
	ok, err := auth.CheckPassword("hunter2-but-longer", admin.PasswordHash)
	if err != nil || !ok {
		t.Errorf("seeded hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestSeedAdminIdempotent(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	if err := store.SeedAdmin(ctx, db, "admin", "hunter2-but-longer"); err != nil {
		t.Fatalf("SeedAdmin: %v", err)
	}
	first, err := store.New(db).GetAdminByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetAdminByUsername: %v", err)
	}

	// Seeding again with the same password keeps the existing hash.
	if err := store.SeedAdmin(ctx, db, "admin", "hunter2-but-longer"); err != nil {
		t.Fatalf("second SeedAdmin: %v", err)
	}
	second, err := store.New(db).GetAdminByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetAdminByUsername: %v", err)
	}
	if first.PasswordHash != second.PasswordHash {
		t.Error("unchanged password rotated the hash")
	}
}

func TestSeedAdminRotatesPassword(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	if err := store.SeedAdmin(ctx, db, "admin", "old-password-1"); err != nil {
		t.Fatalf("SeedAdmin: %v", err)
	}
	before, err := store.New(db).GetAdminByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetAdminByUsername: %v", err)
	}

	if err := store.SeedAdmin(ctx, db, "admin", "new-password-2"); err != nil {
		t.Fatalf("SeedAdmin with new password: %v", err)
	}

	admin, err := store.New(db).GetAdminByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetAdminByUsername: %v", err)
	}
	if admin.ID != before.ID {
		t.Errorf("rotation changed the account id: %d -> %d", before.ID, admin.ID)
	}
	if ok, _ := auth.CheckPassword("new-password-2", admin.PasswordHash); !ok {
		t.Error("new password does not verify after rotation")
	}
	if ok, _ := auth.CheckPassword("old-password-1", admin.PasswordHash); ok {
		t.Error("old password still verifies after rotation")
	}
}

func TestSeedAdminRequiresCredentials(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	if err := store.SeedAdmin(ctx, db, "", "password"); err == nil {
		t.Error("empty username accepted")
	}
	if err := store.SeedAdmin(ctx, db, "admin", ""); err == nil {
		t.Error("empty password accepted")
	}
}
