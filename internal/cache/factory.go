// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package cache

import "time"

// Config selects and tunes a cache backend.
type Config struct {
	// RedisURL selects the Redis backend when non-empty; otherwise the
	// bounded in-memory backend is used.
	RedisURL string

	// Prefix namespaces keys in shared Redis instances.
	Prefix string

	// DefaultTTL applies when Set receives a zero TTL.
	DefaultTTL time.Duration

	// MaxEntries bounds the in-memory backend (0 = unbounded).
	MaxEntries int

	// CleanupInterval is the in-memory expired-entry sweep interval.
	CleanupInterval time.Duration
}

// New creates a cache backend from the config.
func New(cfg Config) (Cacher, error) {
	if cfg.RedisURL != "" {
		return NewRedis(RedisOptions{
			URL:        cfg.RedisURL,
			Prefix:     cfg.Prefix,
			DefaultTTL: cfg.DefaultTTL,
		})
	}
	return NewMemory(MemoryOptions{
		DefaultTTL:      cfg.DefaultTTL,
		MaxEntries:      cfg.MaxEntries,
		CleanupInterval: cfg.CleanupInterval,
	}), nil
}
