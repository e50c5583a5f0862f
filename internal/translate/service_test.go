// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package translate

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ikowalczyk/cvfolio/internal/cache"
)

// fakeProvider records every batch it receives and answers with a fixed
// transformation, or an error when broken.
type fakeProvider struct {
	mu      sync.Mutex
	batches [][]string
	short   bool
	err     error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Translate(_ context.Context, texts []string, targetLang string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, append([]string(nil), texts...))
	if f.err != nil {
		return nil, f.err
	}
	out := make([]string, 0, len(texts))
	for _, text := range texts {
		out = append(out, targetLang+":"+text)
	}
	if f.short && len(out) > 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (f *fakeProvider) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.batches)
}

func newTestService(t *testing.T, provider Provider) *Service {
	t.Helper()
	mem := cache.NewMemory(cache.MemoryOptions{DefaultTTL: time.Minute, MaxEntries: 100})
	t.Cleanup(func() { mem.Close() })
	return NewService(provider, mem)
}

func TestTranslateBatch(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestService(t, provider)

	got, err := svc.Translate(context.Background(), []string{"Witaj", "Świat"}, "en")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got["Witaj"] != "en:Witaj" || got["Świat"] != "en:Świat" {
		t.Errorf("Translate = %v", got)
	}
	if provider.calls() != 1 {
		t.Errorf("provider calls = %d, want 1", provider.calls())
	}
}

func TestTranslateOmitsBlankTexts(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestService(t, provider)

	got, err := svc.Translate(context.Background(), []string{"", "  ", "Tekst"}, "en")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("blank texts should be left out of the result: %v", got)
	}
	if got["Tekst"] != "en:Tekst" {
		t.Errorf("Translate = %v", got)
	}
	if provider.calls() != 1 || len(provider.batches[0]) != 1 {
		t.Errorf("blanks reached the provider: %v", provider.batches)
	}
}

func TestTranslateAllBlank(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestService(t, provider)

	got, err := svc.Translate(context.Background(), []string{"", "   "}, "en")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Translate = %v, want empty map", got)
	}
	if provider.calls() != 0 {
		t.Errorf("provider calls = %d, want 0", provider.calls())
	}
}

func TestTranslateDedupPreservesOrder(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestService(t, provider)

	_, err := svc.Translate(context.Background(), []string{"b", "a", "b", "c", "a"}, "en")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if provider.calls() != 1 {
		t.Fatalf("provider calls = %d, want 1", provider.calls())
	}
	batch := provider.batches[0]
	if strings.Join(batch, ",") != "b,a,c" {
		t.Errorf("provider batch = %v, want first-seen order without duplicates", batch)
	}
}

func TestTranslateCacheHit(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestService(t, provider)
	ctx := context.Background()

	if _, err := svc.Translate(ctx, []string{"Witaj"}, "en"); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	got, err := svc.Translate(ctx, []string{"Witaj"}, "en")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got["Witaj"] != "en:Witaj" {
		t.Errorf("cached Translate = %v", got)
	}
	if provider.calls() != 1 {
		t.Errorf("provider calls = %d, want 1 (second request served from cache)", provider.calls())
	}
}

func TestTranslateCachePerLanguage(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestService(t, provider)
	ctx := context.Background()

	if _, err := svc.Translate(ctx, []string{"Witaj"}, "en"); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	got, err := svc.Translate(ctx, []string{"Witaj"}, "pl")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got["Witaj"] != "pl:Witaj" {
		t.Errorf("Translate(pl) = %v", got)
	}
	if provider.calls() != 2 {
		t.Errorf("provider calls = %d, want 2 (cache is keyed per language)", provider.calls())
	}
}

func TestTranslateCountMismatch(t *testing.T) {
	provider := &fakeProvider{short: true}
	svc := newTestService(t, provider)

	_, err := svc.Translate(context.Background(), []string{"a", "b"}, "en")
	if err == nil {
		t.Fatal("short provider response accepted")
	}
	if !strings.Contains(err.Error(), "returned 1 translations for 2 texts") {
		t.Errorf("err = %v", err)
	}
}

func TestTranslateProviderError(t *testing.T) {
	upstream := errors.New("upstream down")
	provider := &fakeProvider{err: upstream}
	svc := newTestService(t, provider)

	_, err := svc.Translate(context.Background(), []string{"a"}, "en")
	if !errors.Is(err, upstream) {
		t.Errorf("err = %v, want wrapped upstream error", err)
	}
}

func TestTranslateDisabledProvider(t *testing.T) {
	svc := newTestService(t, Disabled{Reason: ErrMissingAPIKey})

	_, err := svc.Translate(context.Background(), []string{"a"}, "en")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestNormalizeTarget(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"EN", "en"},
		{"en-GB", "en"},
		{"pl", "pl"},
		{"pl-PL", "pl"},
		{" pl ", "pl"},
		{"", "en"},
		{"de", "en"},
		{"zz-!!", "en"},
	}
	for _, tt := range tests {
		if got := NormalizeTarget(tt.in); got != tt.want {
			t.Errorf("NormalizeTarget(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
