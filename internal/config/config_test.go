// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package config

import (
	"strings"
	"testing"
)

// clearEnv blanks every variable Load reads so ambient shell state cannot
// leak into tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CVFOLIO_DB_PATH", "CVFOLIO_SERVER_HOST", "CVFOLIO_SERVER_PORT",
		"CVFOLIO_ENV", "CVFOLIO_LOG_LEVEL", "SESSION_TTL_HOURS",
		"ADMIN_USERNAME", "ADMIN_PASSWORD",
		"CVFOLIO_TRANSLATE_PROVIDER", "DEEPL_API_KEY", "OPENAI_API_KEY",
		"CVFOLIO_REDIS_URL", "CVFOLIO_CACHE_PREFIX", "CVFOLIO_TRANSLATE_CACHE_MAX",
		"CVFOLIO_DO_SEED",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DBPath != "./data/cvfolio.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr())
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development")
	}
	if cfg.SessionTTLHours != 24 {
		t.Errorf("SessionTTLHours = %d", cfg.SessionTTLHours)
	}
	if cfg.TranslateProvider != ProviderDeepL {
		t.Errorf("TranslateProvider = %q", cfg.TranslateProvider)
	}
	if cfg.UseRedisCache() {
		t.Error("UseRedisCache without CVFOLIO_REDIS_URL")
	}
	if cfg.TranslateCacheMax != 4096 {
		t.Errorf("TranslateCacheMax = %d", cfg.TranslateCacheMax)
	}
	if cfg.DoSeed {
		t.Error("DoSeed should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CVFOLIO_SERVER_HOST", "0.0.0.0")
	t.Setenv("CVFOLIO_SERVER_PORT", "9090")
	t.Setenv("CVFOLIO_ENV", "production")
	t.Setenv("CVFOLIO_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CVFOLIO_DO_SEED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ServerAddr() != "0.0.0.0:9090" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr())
	}
	if cfg.IsDevelopment() {
		t.Error("production env reported as development")
	}
	if !cfg.UseRedisCache() {
		t.Error("UseRedisCache with CVFOLIO_REDIS_URL set")
	}
	if !cfg.DoSeed {
		t.Error("DoSeed not parsed")
	}
}

func TestLoadSessionTTLFloor(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_TTL_HOURS", "-5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SessionTTLHours != 24 {
		t.Errorf("SessionTTLHours = %d, want fallback 24", cfg.SessionTTLHours)
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("CVFOLIO_TRANSLATE_PROVIDER", "babelfish")

	if _, err := Load(); err == nil {
		t.Fatal("unknown provider accepted")
	}
}

func TestTranslateAPIKeyPerProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEEPL_API_KEY", "deepl-key")
	t.Setenv("OPENAI_API_KEY", "openai-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.TranslateAPIKey(); got != "deepl-key" {
		t.Errorf("TranslateAPIKey (deepl) = %q", got)
	}

	cfg.TranslateProvider = ProviderOpenAI
	if got := cfg.TranslateAPIKey(); got != "openai-key" {
		t.Errorf("TranslateAPIKey (openai) = %q", got)
	}
}

func TestLoadRejectsWeakAdminPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("CVFOLIO_ENV", "production")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "ChangeMe")

	_, err := Load()
	if err == nil {
		t.Fatal("weak admin password accepted in production")
	}
	if !strings.Contains(err.Error(), "ADMIN_PASSWORD") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadAllowsWeakPasswordInDevelopment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "changeme")

	if _, err := Load(); err != nil {
		t.Errorf("Load: %v", err)
	}
}
