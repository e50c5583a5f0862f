// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package translate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"

	"github.com/ikowalczyk/cvfolio/internal/cache"
)

// Target languages. CV content is authored in Polish; anything that does
// not match a supported tag falls back to English.
const (
	LangEnglish = "en"
	LangPolish  = "pl"
)

var (
	supportedLangs = []language.Tag{language.English, language.Polish}
	langMatcher    = language.NewMatcher(supportedLangs)
)

// NormalizeTarget maps an arbitrary language string onto a supported
// target language. Unknown or malformed tags resolve to English.
func NormalizeTarget(lang string) string {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return LangEnglish
	}
	_, idx, conf := langMatcher.Match(tag)
	if conf == language.No {
		return LangEnglish
	}
	if supportedLangs[idx] == language.Polish {
		return LangPolish
	}
	return LangEnglish
}

// DefaultCacheTTL is how long translated strings stay cached. Translations
// of stable CV content rarely change, so the TTL is generous.
const DefaultCacheTTL = 24 * time.Hour

// Service translates batches of CV text through a provider, backed by a
// cache and request coalescing so concurrent identical batches produce a
// single upstream call.
type Service struct {
	provider Provider
	cache    cache.Cacher
	ttl      time.Duration
	logger   *slog.Logger
	group    singleflight.Group
}

// ServiceOption customizes the service.
type ServiceOption func(*Service)

// WithCacheTTL overrides the translation cache TTL.
func WithCacheTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) { s.ttl = ttl }
}

// WithLogger overrides the service logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// NewService creates a translation service over the given provider and cache.
func NewService(provider Provider, cacher cache.Cacher, opts ...ServiceOption) *Service {
	s := &Service{
		provider: provider,
		cache:    cacher,
		ttl:      DefaultCacheTTL,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Translate returns a map from each requested text to its translation in
// the target language. Blank texts are omitted from the result without
// touching the provider; duplicates collapse into a single lookup; only
// cache misses reach the provider, as one batched call.
func (s *Service) Translate(ctx context.Context, texts []string, targetLang string) (map[string]string, error) {
	lang := NormalizeTarget(targetLang)
	result := make(map[string]string, len(texts))

	// Dedup while preserving first-seen order so the provider batch is
	// deterministic for identical requests.
	seen := make(map[string]struct{}, len(texts))
	unique := make([]string, 0, len(texts))
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		unique = append(unique, text)
	}

	missing := make([]string, 0, len(unique))
	for _, text := range unique {
		cached, err := s.cache.Get(ctx, cacheKey(lang, text))
		if err == nil {
			result[text] = string(cached)
			continue
		}
		missing = append(missing, text)
	}

	if len(missing) == 0 {
		return result, nil
	}

	translated, err := s.fetch(ctx, missing, lang)
	if err != nil {
		return nil, err
	}
	for i, text := range missing {
		result[text] = translated[i]
		if err := s.cache.Set(ctx, cacheKey(lang, text), []byte(translated[i]), s.ttl); err != nil {
			s.logger.Warn("caching translation failed", "error", err)
		}
	}
	return result, nil
}

// fetch calls the provider through singleflight so concurrent identical
// batches share one upstream request, and rejects responses whose length
// does not match the request.
func (s *Service) fetch(ctx context.Context, texts []string, lang string) ([]string, error) {
	v, err, _ := s.group.Do(batchKey(lang, texts), func() (any, error) {
		out, err := s.provider.Translate(ctx, texts, lang)
		if err != nil {
			return nil, err
		}
		if len(out) != len(texts) {
			return nil, fmt.Errorf("translate: provider %s returned %d translations for %d texts",
				s.provider.Name(), len(out), len(texts))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

func cacheKey(lang, text string) string {
	return lang + "::" + text
}

func batchKey(lang string, texts []string) string {
	h := sha256.New()
	h.Write([]byte(lang))
	for _, text := range texts {
		h.Write([]byte{0})
		h.Write([]byte(text))
	}
	return hex.EncodeToString(h.Sum(nil))
}
