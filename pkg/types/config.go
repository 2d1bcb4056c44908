// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "answer-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the retrieval stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// TopK is the maximum number of results kept and passed downstream
	// (default 5).
	TopK int `json:"top_k" yaml:"top_k"`

	// MinSnippetLength is the minimum snippet length for a result to be
	// considered substantial enough to keep (default 50).
	MinSnippetLength int `json:"min_snippet_length" yaml:"min_snippet_length"`
}

// PromptConfig holds settings for prompt assembly.
type PromptConfig struct {
	// SnippetBudget is the per-snippet character budget; longer snippets
	// are truncated before they enter the prompt (default 500).
	SnippetBudget int `json:"snippet_budget" yaml:"snippet_budget"`
}

// GenerationBackend identifies the text generation backend variant.
type GenerationBackend string

const (
	BackendOllama GenerationBackend = "ollama"
	BackendOpenAI GenerationBackend = "openai"
)

// GenerateConfig holds settings for the generation stage. The backend
// variant is fixed at construction time and not re-evaluated per request.
type GenerateConfig struct {
	// Backend selects the generation variant: ollama or openai.
	Backend GenerationBackend `json:"backend" yaml:"backend"`

	// Timeout is the request timeout for generation calls. Generation is
	// blocking and non-streaming, so this bounds the whole call (default 3m).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// OllamaURL is the base URL of the local Ollama server
	// (default http://localhost:11434).
	OllamaURL string `json:"ollama_url" yaml:"ollama_url"`

	// OllamaModel is the model identifier sent to Ollama (default "llama2").
	OllamaModel string `json:"ollama_model" yaml:"ollama_model"`

	// OpenAIModel is the model identifier for the OpenAI chat completion
	// API (default "gpt-3.5-turbo").
	OpenAIModel string `json:"openai_model" yaml:"openai_model"`

	// OpenAIKey is the API key for the OpenAI backend. Required when
	// Backend is openai; ignored otherwise.
	OpenAIKey string `json:"openai_key,omitempty" yaml:"openai_key,omitempty"`

	// Temperature is the sampling temperature passed to either backend
	// (default 0.7).
	Temperature float32 `json:"temperature" yaml:"temperature"`

	// MaxTokens caps the length of the generated answer (default 500).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`
}

// Config is the full immutable configuration handed to the answer engine
// at construction.
type Config struct {
	Search   SearchConfig   `json:"search" yaml:"search"`
	Prompt   PromptConfig   `json:"prompt" yaml:"prompt"`
	Generate GenerateConfig `json:"generate" yaml:"generate"`
}
