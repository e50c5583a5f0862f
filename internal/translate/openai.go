// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const openAISystemPrompt = `You are a translation engine for a personal CV website.
Translate each string in the JSON array from Polish into the requested language.
Preserve formatting, proper nouns, and technology names.
Respond with ONLY a JSON array of translated strings, one per input, in the same order.`

// OpenAI translates text through a chat completion model. It is the
// fallback provider for deployments without a DeepL subscription.
type OpenAI struct {
	client openai.Client
	model  openai.ChatModel
}

// OpenAIOption customizes the OpenAI provider.
type OpenAIOption func(*OpenAI)

// WithOpenAIModel overrides the completion model.
func WithOpenAIModel(model openai.ChatModel) OpenAIOption {
	return func(o *OpenAI) { o.model = model }
}

// NewOpenAI creates an OpenAI provider. An empty API key is an error so the
// service fails closed instead of silently echoing source text.
func NewOpenAI(apiKey string, opts ...OpenAIOption) (*OpenAI, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	o := &OpenAI{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  openai.ChatModelGPT4oMini,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Name identifies the provider in logs.
func (o *OpenAI) Name() string { return "openai" }

// Translate sends the batch as a JSON array and parses the model's JSON
// array reply.
func (o *OpenAI) Translate(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	payload, err := json.Marshal(texts)
	if err != nil {
		return nil, fmt.Errorf("encoding openai request: %w", err)
	}
	prompt := fmt.Sprintf("Target language: %s\n\n%s", strings.ToUpper(targetLang), payload)

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(openAISystemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("calling openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	// Models occasionally wrap JSON in a code fence despite instructions.
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var out []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &out); err != nil {
		return nil, fmt.Errorf("decoding openai response: %w", err)
	}
	return out, nil
}

var _ Provider = (*OpenAI)(nil)
