// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

// Package translate proxies CV text to a machine translation provider
// behind a bounded cache with request coalescing.
package translate

import (
	"context"
	"errors"
)

// Provider turns a batch of source texts into translations in the target
// language. Implementations must return exactly one translation per input
// text, in the same order.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string

	// Translate translates texts into the target language.
	Translate(ctx context.Context, texts []string, targetLang string) ([]string, error)
}

// ErrMissingAPIKey is returned when a provider is constructed without
// credentials. Translation fails closed rather than passing text through.
var ErrMissingAPIKey = errors.New("translate: missing provider API key")

// Disabled is a Provider that always fails with the given reason. It keeps
// the service wired when no provider is configured, so translation requests
// fail closed instead of echoing untranslated text.
type Disabled struct {
	Reason error
}

// Name identifies the provider in logs.
func (d Disabled) Name() string { return "disabled" }

// Translate always fails.
func (d Disabled) Translate(context.Context, []string, string) ([]string, error) {
	return nil, d.Reason
}

var _ Provider = Disabled{}
