// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/answer-engine/pkg/types"
)

const (
	// ollamaGeneratePath is the non-streaming generation endpoint on an
	// Ollama server.
	ollamaGeneratePath = "/api/generate"

	defaultOllamaURL     = "http://localhost:11434"
	defaultOllamaModel   = "llama2"
	defaultOllamaTimeout = 3 * time.Minute
)

// Ollama posts prompts to a local Ollama server and blocks until the full
// response arrives.
type Ollama struct {
	baseURL     string
	model       string
	temperature float32
	maxTokens   int
	client      *http.Client
}

// NewOllama builds the local backend from cfg, filling defaults for unset
// fields. It never fails: a server that is not running surfaces as a
// completion error, not a construction error.
func NewOllama(cfg types.GenerateConfig) *Ollama {
	baseURL := strings.TrimSuffix(cfg.OllamaURL, "/")
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}
	model := cfg.OllamaModel
	if model == "" {
		model = defaultOllamaModel
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultOllamaTimeout
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	return &Ollama{
		baseURL:     baseURL,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		client:      &http.Client{Timeout: timeout},
	}
}

// Name returns the backend identifier.
func (o *Ollama) Name() string { return "ollama" }

// ollamaRequest is the request body for the Ollama generate API.
type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

// ollamaOptions carries the sampling parameters Ollama understands.
type ollamaOptions struct {
	Temperature float32 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

// ollamaResponse is the single-object body returned for stream:false.
type ollamaResponse struct {
	Response string `json:"response"`
}

// Complete posts the prompt and returns the generated text.
func (o *Ollama) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := ollamaRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: o.temperature,
			NumPredict:  o.maxTokens,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+ollamaGeneratePath, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request (is the server running? try: ollama serve): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned HTTP %d", resp.StatusCode)
	}

	var or ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return "", fmt.Errorf("parsing ollama response: %w", err)
	}

	text := strings.TrimSpace(or.Response)
	if text == "" {
		return "", fmt.Errorf("ollama: %w", ErrEmptyCompletion)
	}
	return text, nil
}
