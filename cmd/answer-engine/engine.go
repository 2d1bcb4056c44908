// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/answer-engine/internal/answer"
	"github.com/pdiddy/answer-engine/internal/generate"
	"github.com/pdiddy/answer-engine/internal/httputil"
	"github.com/pdiddy/answer-engine/internal/search"
	"github.com/pdiddy/answer-engine/internal/secrets"
	"github.com/pdiddy/answer-engine/pkg/types"
)

const (
	defaultTopK          = 5
	defaultSearchTimeout = 10 * time.Second
	defaultUserAgent     = "answer-engine/0.1"
)

// loadConfig resolves the effective configuration: defaults, then the viper
// config file and ANSWER_ENGINE_* environment, then command flags. The
// result is immutable for the lifetime of the engine.
func loadConfig(cmd *cobra.Command) types.Config {
	viper.SetDefault("search.top_k", defaultTopK)
	viper.SetDefault("search.timeout", defaultSearchTimeout)
	viper.SetDefault("search.user_agent", defaultUserAgent)
	viper.SetDefault("generate.backend", string(types.BackendOllama))

	cfg := types.Config{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("search.timeout"),
				UserAgent: viper.GetString("search.user_agent"),
			},
			TopK:             viper.GetInt("search.top_k"),
			MinSnippetLength: viper.GetInt("search.min_snippet_length"),
		},
		Prompt: types.PromptConfig{
			SnippetBudget: viper.GetInt("prompt.snippet_budget"),
		},
		Generate: types.GenerateConfig{
			Backend:     types.GenerationBackend(viper.GetString("generate.backend")),
			Timeout:     viper.GetDuration("generate.timeout"),
			OllamaURL:   viper.GetString("generate.ollama_url"),
			OllamaModel: viper.GetString("generate.ollama_model"),
			OpenAIModel: viper.GetString("generate.openai_model"),
			OpenAIKey:   resolveOpenAIKey(),
			Temperature: float32(viper.GetFloat64("generate.temperature")),
			MaxTokens:   viper.GetInt("generate.max_tokens"),
		},
	}

	if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
		cfg.Generate.Backend = types.GenerationBackend(backend)
	}
	if topK, _ := cmd.Flags().GetInt("top-k"); topK > 0 {
		cfg.Search.TopK = topK
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		switch cfg.Generate.Backend {
		case types.BackendOpenAI:
			cfg.Generate.OpenAIModel = model
		default:
			cfg.Generate.OllamaModel = model
		}
	}

	return cfg
}

// resolveOpenAIKey looks up the OpenAI credential: process environment
// first, then the .secrets/ directory, then the config file.
func resolveOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	if key, ok := loadedSecrets[secrets.OpenAIKeyFile]; ok {
		return key
	}
	return viper.GetString("generate.openai_key")
}

// buildEngine constructs the full orchestration chain from the resolved
// configuration. Backend construction fails here, before any question is
// read, when the selected variant is misconfigured.
func buildEngine(cmd *cobra.Command, warnings io.Writer) (*answer.Engine, error) {
	cfg := loadConfig(cmd)

	backend, err := generate.New(cfg.Generate)
	if err != nil {
		return nil, err
	}

	client := httputil.NewClient(cfg.Search.HTTPConfig)
	primary := &search.DuckDuckGoBackend{Client: client}
	fallback := &search.WikipediaBackend{Client: client}

	return answer.NewEngine(primary, fallback, backend, cfg, warnings), nil
}
