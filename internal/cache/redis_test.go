// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

// skipIfNoRedis skips the test unless a test Redis instance is configured.
func skipIfNoRedis(t *testing.T) string {
	t.Helper()
	url := os.Getenv("CVFOLIO_TEST_REDIS_URL")
	if url == "" {
		t.Skip("skipping: CVFOLIO_TEST_REDIS_URL not set")
	}
	return url
}

func newTestRedis(t *testing.T, prefix string) *Redis {
	t.Helper()
	url := skipIfNoRedis(t)

	c, err := NewRedis(RedisOptions{URL: url, Prefix: prefix, DefaultTTL: time.Minute})
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}
	t.Cleanup(func() {
		_ = c.Clear(context.Background())
		_ = c.Close()
	})
	return c
}

// TestRedisCacherContract runs the same behavioral checks as the memory
// backend, so the two stay interchangeable behind Cacher.
func TestRedisCacherContract(t *testing.T) {
	c := newTestRedis(t, "contract-test:")
	runCacherContract(t, c)
}

func TestRedisClearRespectsPrefix(t *testing.T) {
	a := newTestRedis(t, "prefix-a:")
	b := newTestRedis(t, "prefix-b:")
	ctx := context.Background()

	if err := a.Set(ctx, "key", []byte("a"), time.Minute); err != nil {
		t.Fatalf("Set(a): %v", err)
	}
	if err := b.Set(ctx, "key", []byte("b"), time.Minute); err != nil {
		t.Fatalf("Set(b): %v", err)
	}

	if err := a.Clear(ctx); err != nil {
		t.Fatalf("Clear(a): %v", err)
	}
	if _, err := a.Get(ctx, "key"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("a key survived Clear, err = %v", err)
	}
	if got, err := b.Get(ctx, "key"); err != nil || string(got) != "b" {
		t.Errorf("Clear(a) touched b: %q, %v", got, err)
	}
}

func TestRedisStats(t *testing.T) {
	c := newTestRedis(t, "stats-test:")
	ctx := context.Background()

	c.ResetStats()
	_ = c.Set(ctx, "k1", []byte("v1"), time.Minute)
	_, _ = c.Get(ctx, "k1")
	_, _ = c.Get(ctx, "k1")
	_, _ = c.Get(ctx, "absent")

	stats := c.Stats()
	if stats.Hits != 2 || stats.Misses != 1 || stats.Sets != 1 {
		t.Errorf("Stats = %+v, want 2 hits, 1 miss, 1 set", stats)
	}
}

func TestRedisPingAndClose(t *testing.T) {
	url := skipIfNoRedis(t)

	c, err := NewRedis(RedisOptions{URL: url, Prefix: "close-test:", DefaultTTL: time.Minute})
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}
	ctx := context.Background()

	if err := c.Ping(ctx); err != nil {
		t.Errorf("Ping: %v", err)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Get after Close err = %v, want ErrCacheClosed", err)
	}
	if err := c.Set(ctx, "k", nil, 0); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Set after Close err = %v, want ErrCacheClosed", err)
	}
	// Double close is safe.
	if err := c.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestNewRedisBadURL(t *testing.T) {
	if _, err := NewRedis(RedisOptions{URL: "not-a-url"}); err == nil {
		t.Error("invalid URL accepted")
	}
	if _, err := NewRedis(RedisOptions{}); err == nil {
		t.Error("empty URL accepted")
	}
}
