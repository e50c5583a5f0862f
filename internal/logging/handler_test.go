// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package logging_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/ikowalczyk/cvfolio/internal/logging"
	"github.com/ikowalczyk/cvfolio/internal/model"
	"github.com/ikowalczyk/cvfolio/internal/store"
	"github.com/ikowalczyk/cvfolio/internal/testutil"
)

func newTestLogger(t *testing.T) (*slog.Logger, *store.Queries) {
	t.Helper()
	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	inner := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(logging.NewEventLogHandler(inner, db)), store.New(db)
}

func TestWarnPersistedToEventLog(t *testing.T) {
	logger, queries := newTestLogger(t)

	logger.Warn("seed fallback active", "reason", "store empty")

	events, err := queries.ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	e := events[0]
	if e.Level != model.EventLevelWarning {
		t.Errorf("level = %q", e.Level)
	}
	if e.Message != "seed fallback active" {
		t.Errorf("message = %q", e.Message)
	}
	if e.Metadata != `{"reason":"store empty"}` {
		t.Errorf("metadata = %s", e.Metadata)
	}
}

func TestInfoNotPersisted(t *testing.T) {
	logger, queries := newTestLogger(t)

	logger.Info("admin logged in", "username", "admin")

	events, err := queries.ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("events = %d, want 0 (INFO stays out of the audit log)", len(events))
	}
}

func TestErrorLevelMapped(t *testing.T) {
	logger, queries := newTestLogger(t)

	logger.Error("translation failed", "category", "translate")

	events, err := queries.ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].Level != model.EventLevelError {
		t.Errorf("level = %q", events[0].Level)
	}
	if events[0].Category != model.EventCategoryTranslate {
		t.Errorf("category = %q", events[0].Category)
	}
}

func TestCategoryInferredFromMessage(t *testing.T) {
	logger, queries := newTestLogger(t)

	logger.Warn("login rate limit exceeded", "ip", "203.0.113.9")
	logger.Warn("project delete failed")
	logger.Warn("disk almost full")

	events, err := queries.ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}

	// Newest first.
	byMessage := make(map[string]string, len(events))
	for _, e := range events {
		byMessage[e.Message] = e.Category
	}
	if byMessage["login rate limit exceeded"] != model.EventCategoryAuth {
		t.Errorf("auth category = %q", byMessage["login rate limit exceeded"])
	}
	if byMessage["project delete failed"] != model.EventCategoryContent {
		t.Errorf("content category = %q", byMessage["project delete failed"])
	}
	if byMessage["disk almost full"] != model.EventCategorySystem {
		t.Errorf("system category = %q", byMessage["disk almost full"])
	}
}

func TestMetadataEscaping(t *testing.T) {
	logger, queries := newTestLogger(t)

	logger.Warn("session sweep failed", "error", `bad "quote"
and newline`)

	events, err := queries.ListRecentEvents(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	want := `{"error":"bad \"quote\"\nand newline"}`
	if events[0].Metadata != want {
		t.Errorf("metadata = %s, want %s", events[0].Metadata, want)
	}
}
