// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate dispatches an assembled prompt to a text generation
// backend and returns the completed answer.
//
// Two variants exist: a local Ollama server and the OpenAI chat completion
// API. The variant is chosen once at construction; generation calls are
// blocking and non-streaming, with no retry. Transport failures,
// non-success statuses, and empty completions all surface as errors to the
// caller, which handles them one level up.
package generate

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdiddy/answer-engine/pkg/types"
)

// ErrEmptyCompletion is returned when a backend responds successfully but
// produces no text.
var ErrEmptyCompletion = errors.New("backend returned an empty completion")

// ErrMissingAPIKey is returned at construction when the selected backend
// requires a credential that is not configured.
var ErrMissingAPIKey = errors.New("API key is not configured")

// Backend produces a completion for a prompt. Each variant (Ollama,
// OpenAI) implements this interface per the Strategy pattern.
type Backend interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// New constructs the backend selected by cfg.Backend. Configuration
// problems (unknown variant, missing OpenAI key) are fatal here, before any
// question is processed.
func New(cfg types.GenerateConfig) (Backend, error) {
	switch cfg.Backend {
	case types.BackendOllama, "":
		return NewOllama(cfg), nil
	case types.BackendOpenAI:
		return NewOpenAI(cfg)
	default:
		return nil, fmt.Errorf("unknown generation backend %q (expected %q or %q)",
			cfg.Backend, types.BackendOllama, types.BackendOpenAI)
	}
}
