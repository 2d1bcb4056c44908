// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pdiddy/answer-engine/pkg/types"
)

const (
	defaultOpenAIModel = openai.GPT3Dot5Turbo

	defaultTemperature float32 = 0.7
	defaultMaxTokens           = 500
)

// OpenAI posts prompts to the OpenAI chat completion API.
type OpenAI struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewOpenAI builds the cloud backend from cfg. A missing API key is a
// configuration error and fails construction before the first question.
func NewOpenAI(cfg types.GenerateConfig) (*OpenAI, error) {
	if strings.TrimSpace(cfg.OpenAIKey) == "" {
		return nil, fmt.Errorf("openai backend: %w (set OPENAI_API_KEY or .secrets/openai-api-key)", ErrMissingAPIKey)
	}

	model := cfg.OpenAIModel
	if model == "" {
		model = defaultOpenAIModel
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	return &OpenAI{
		client:      openai.NewClient(cfg.OpenAIKey),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// newOpenAIWithConfig is used by tests to point the client at an httptest
// server.
func newOpenAIWithConfig(clientCfg openai.ClientConfig, model string) *OpenAI {
	return &OpenAI{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		temperature: defaultTemperature,
		maxTokens:   defaultMaxTokens,
	}
}

// Name returns the backend identifier.
func (o *OpenAI) Name() string { return "openai" }

// Complete sends the prompt as a single user message and returns the first
// choice's content.
func (o *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: o.temperature,
		MaxTokens:   o.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: %w", ErrEmptyCompletion)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("openai: %w", ErrEmptyCompletion)
	}
	return text, nil
}
