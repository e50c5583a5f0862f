// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultDeepLEndpoint is the free-tier translation endpoint.
const DefaultDeepLEndpoint = "https://api-free.deepl.com/v2/translate"

// deepLSourceLang is the language CV content is authored in.
const deepLSourceLang = "PL"

// DeepL translates text through the DeepL v2 REST API. Requests are
// form-encoded batches; one text parameter per input preserves order.
type DeepL struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// DeepLOption customizes the DeepL provider.
type DeepLOption func(*DeepL)

// WithDeepLEndpoint overrides the API endpoint, used by tests and paid-tier
// deployments.
func WithDeepLEndpoint(endpoint string) DeepLOption {
	return func(d *DeepL) { d.endpoint = endpoint }
}

// WithDeepLHTTPClient overrides the HTTP client.
func WithDeepLHTTPClient(client *http.Client) DeepLOption {
	return func(d *DeepL) { d.client = client }
}

// NewDeepL creates a DeepL provider. An empty API key is an error so the
// service fails closed instead of silently echoing source text.
func NewDeepL(apiKey string, opts ...DeepLOption) (*DeepL, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	d := &DeepL{
		apiKey:   apiKey,
		endpoint: DefaultDeepLEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Name identifies the provider in logs.
func (d *DeepL) Name() string { return "deepl" }

// Translate sends one batched request and returns translations in input order.
func (d *DeepL) Translate(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	form := url.Values{}
	for _, text := range texts {
		form.Add("text", text)
	}
	form.Set("source_lang", deepLSourceLang)
	form.Set("target_lang", strings.ToUpper(targetLang))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building deepl request: %w", err)
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+d.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling deepl: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("deepl returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding deepl response: %w", err)
	}

	out := make([]string, 0, len(parsed.Translations))
	for _, t := range parsed.Translations {
		out = append(out, t.Text)
	}
	return out, nil
}

var _ Provider = (*DeepL)(nil)
