// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package answer orchestrates retrieval, prompt assembly, and generation
// into a single question-to-answer sequence.
package answer

import (
	"context"
	"io"
	"strings"

	"github.com/pdiddy/answer-engine/internal/generate"
	"github.com/pdiddy/answer-engine/internal/prompt"
	"github.com/pdiddy/answer-engine/internal/search"
	"github.com/pdiddy/answer-engine/pkg/types"
)

// Engine answers questions. It is built once from an immutable Config and
// carries no per-request state: each question runs search, prompt assembly,
// and generation to completion before the next one starts.
type Engine struct {
	primary  search.Backend
	fallback search.Backend
	backend  generate.Backend
	cfg      types.Config
	warnings io.Writer
}

// NewEngine wires the search backends and generation backend together.
// Warnings from degraded search paths are written to w.
func NewEngine(primary, fallback search.Backend, backend generate.Backend, cfg types.Config, w io.Writer) *Engine {
	if w == nil {
		w = io.Discard
	}
	return &Engine{
		primary:  primary,
		fallback: fallback,
		backend:  backend,
		cfg:      cfg,
		warnings: w,
	}
}

// Answer runs one question end to end. Search failures degrade to an empty
// source list and the prompt's no-sources branch; generation failures
// propagate to the caller. The returned sources keep the provider's order
// and content unchanged.
func (e *Engine) Answer(ctx context.Context, question string) (types.Answer, error) {
	if strings.TrimSpace(question) == "" {
		return types.Answer{Text: "Please ask a question."}, nil
	}

	results := search.Search(ctx, question, e.primary, e.fallback, e.cfg.Search, e.warnings)

	p, err := prompt.Build(question, results, e.cfg.Prompt)
	if err != nil {
		return types.Answer{}, err
	}

	text, err := e.backend.Complete(ctx, p)
	if err != nil {
		return types.Answer{}, err
	}

	return types.Answer{Text: text, Sources: results}, nil
}
