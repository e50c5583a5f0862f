// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakPasswords contains default/example credentials that must be
// rejected when seeding the admin account in production.
var knownWeakPasswords = []string{
	"changeme",
	"password",
	"admin",
	"cvfolio",
}

// Translation providers supported by the translate service.
const (
	ProviderDeepL  = "deepl"
	ProviderOpenAI = "openai"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"CVFOLIO_DB_PATH" envDefault:"./data/cvfolio.db"`
	ServerHost string `env:"CVFOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"CVFOLIO_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"CVFOLIO_ENV" envDefault:"development"`
	LogLevel   string `env:"CVFOLIO_LOG_LEVEL" envDefault:"info"`

	// Session configuration
	SessionTTLHours int `env:"SESSION_TTL_HOURS" envDefault:"24"`

	// Admin bootstrap credentials, consumed only by the seeding step.
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Translation provider configuration
	TranslateProvider string `env:"CVFOLIO_TRANSLATE_PROVIDER" envDefault:"deepl"`
	DeepLAPIKey       string `env:"DEEPL_API_KEY"`
	OpenAIAPIKey      string `env:"OPENAI_API_KEY"`

	// Translation cache configuration
	RedisURL          string `env:"CVFOLIO_REDIS_URL"`                          // Optional Redis backend for the translation cache
	CachePrefix       string `env:"CVFOLIO_CACHE_PREFIX" envDefault:"cvfolio:"` // Redis key prefix
	TranslateCacheMax int    `env:"CVFOLIO_TRANSLATE_CACHE_MAX" envDefault:"4096"`

	// Seeding configuration
	DoSeed bool `env:"CVFOLIO_DO_SEED" envDefault:"false"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// TranslateAPIKey returns the API key for the configured translation provider.
func (c Config) TranslateAPIKey() string {
	if c.TranslateProvider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.DeepLAPIKey
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.SessionTTLHours <= 0 {
		cfg.SessionTTLHours = 24
	}

	switch cfg.TranslateProvider {
	case ProviderDeepL, ProviderOpenAI:
	default:
		return nil, fmt.Errorf("CVFOLIO_TRANSLATE_PROVIDER must be %q or %q, got %q",
			ProviderDeepL, ProviderOpenAI, cfg.TranslateProvider)
	}

	// Reject known weak admin passwords outside development
	if !cfg.IsDevelopment() && cfg.AdminPassword != "" {
		lowered := strings.ToLower(cfg.AdminPassword)
		for _, weak := range knownWeakPasswords {
			if lowered == weak {
				return nil, fmt.Errorf("ADMIN_PASSWORD is a known default value and must not be used; " +
					"generate a secure password with: openssl rand -base64 24")
			}
		}
	}

	return cfg, nil
}
