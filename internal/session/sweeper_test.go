// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/ikowalczyk/cvfolio/internal/session"
	"github.com/ikowalczyk/cvfolio/internal/store"
	"github.com/ikowalczyk/cvfolio/internal/testutil"
)

func TestSweepRemovesOnlyExpired(t *testing.T) {
	_, db, adminID := newTestManager(t)
	ctx := context.Background()
	queries := store.New(db)

	if _, err := queries.CreateSession(ctx, "expired-1", adminID, time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := queries.CreateSession(ctx, "expired-2", adminID, time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := queries.CreateSession(ctx, "live", adminID, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	sweeper := session.NewSweeper(db, testutil.TestLogger())
	if err := sweeper.Sweep(ctx); err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	for token, want := range map[string]int64{"expired-1": 0, "expired-2": 0, "live": 1} {
		n, err := queries.CountSessions(ctx, token)
		if err != nil {
			t.Fatalf("CountSessions(%s): %v", token, err)
		}
		if n != want {
			t.Errorf("sessions with token %q = %d, want %d", token, n, want)
		}
	}
}

func TestSweeperStartStop(t *testing.T) {
	_, db, _ := newTestManager(t)

	sweeper := session.NewSweeper(db, testutil.TestLogger())
	if err := sweeper.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	sweeper.Stop()
}
