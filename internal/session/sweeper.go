// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ikowalczyk/cvfolio/internal/store"
)

// Sweeper periodically removes expired session rows. Lazy expiry on the
// request path only cleans up tokens that are presented again; abandoned
// sessions would otherwise accumulate indefinitely.
type Sweeper struct {
	queries *store.Queries
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSweeper creates a sweeper over the given database.
func NewSweeper(db *sql.DB, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		queries: store.New(db),
		cron:    cron.New(),
		logger:  logger,
	}
}

// Start schedules an hourly sweep of expired sessions.
func (s *Sweeper) Start() error {
	_, err := s.cron.AddFunc("@hourly", func() {
		if err := s.Sweep(context.Background()); err != nil {
			s.logger.Error("session sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("session sweeper started")
	return nil
}

// Stop gracefully stops the sweeper, waiting for a running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("session sweeper stopped")
}

// Sweep deletes every session row that has already expired.
func (s *Sweeper) Sweep(ctx context.Context) error {
	n, err := s.queries.DeleteExpiredSessions(ctx, time.Now())
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Info("swept expired sessions", "count", n)
	}
	return nil
}
