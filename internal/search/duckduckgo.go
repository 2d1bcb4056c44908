// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/answer-engine/pkg/types"
)

// duckDuckGoBase is the DuckDuckGo Instant Answer API endpoint. Declared as
// a var so tests can substitute an httptest server.
var duckDuckGoBase = "https://api.duckduckgo.com/"

// maxRelatedTopics caps how many related topics are taken from a single
// Instant Answer response, on top of the main abstract.
const maxRelatedTopics = 4

// DuckDuckGoBackend queries the keyless DuckDuckGo Instant Answer API.
type DuckDuckGoBackend struct {
	Client *http.Client
}

// Name returns the backend identifier.
func (b *DuckDuckGoBackend) Name() string { return "duckduckgo" }

// ddgResponse is the subset of the Instant Answer payload we consume.
type ddgResponse struct {
	Heading     string     `json:"Heading"`
	Abstract    string     `json:"Abstract"`
	AbstractURL string     `json:"AbstractURL"`
	Related     []ddgTopic `json:"RelatedTopics"`
}

// ddgTopic is a related topic entry. Entries with a non-empty Topics list
// are category groups rather than results and are skipped.
type ddgTopic struct {
	Text     string     `json:"Text"`
	FirstURL string     `json:"FirstURL"`
	Topics   []ddgTopic `json:"Topics"`
}

// Search issues a single GET to the Instant Answer API and converts the
// abstract plus related topics into results. Entries whose text is shorter
// than cfg.MinSnippetLength are dropped as insubstantial.
func (b *DuckDuckGoBackend) Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.SearchResult, error) {
	params := url.Values{
		"q":             {query},
		"format":        {"json"},
		"no_html":       {"1"},
		"skip_disambig": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, duckDuckGoBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := b.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("DuckDuckGo API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DuckDuckGo API returned HTTP %d", resp.StatusCode)
	}

	var dr ddgResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("parsing DuckDuckGo response: %w", err)
	}

	minLen := cfg.MinSnippetLength
	if minLen <= 0 {
		minLen = 50
	}

	var results []types.SearchResult

	if len(dr.Abstract) >= minLen {
		title := dr.Heading
		if title == "" {
			title = "Main Answer"
		}
		results = append(results, types.SearchResult{
			Title:   title,
			Snippet: dr.Abstract,
			Link:    dr.AbstractURL,
			Source:  "duckduckgo",
		})
	}

	taken := 0
	for _, topic := range dr.Related {
		if taken >= maxRelatedTopics {
			break
		}
		if len(topic.Topics) > 0 || len(topic.Text) < minLen {
			continue
		}
		results = append(results, types.SearchResult{
			Title:   topicTitle(topic.Text),
			Snippet: topic.Text,
			Link:    topic.FirstURL,
			Source:  "duckduckgo",
		})
		taken++
	}

	return results, nil
}

// topicTitle derives a short title from a related topic's text, which has
// no separate title field.
func topicTitle(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > 80 {
		return text[:80] + "..."
	}
	return text
}
