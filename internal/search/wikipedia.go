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

// Wikipedia endpoints. Package-level vars for test substitution.
var (
	wikipediaSearchBase  = "https://en.wikipedia.org/w/api.php"
	wikipediaSummaryBase = "https://en.wikipedia.org/api/rest_v1/page/summary/"
)

const (
	// openSearchLimit is the number of titles requested from the
	// opensearch listing.
	openSearchLimit = 5

	// maxSummaryFetches bounds how many page summaries are fetched per
	// query; titles beyond this keep their opensearch description.
	maxSummaryFetches = 3
)

// WikipediaBackend looks up encyclopedia summaries. It lists candidate
// articles via the MediaWiki opensearch action, then fetches the REST page
// summary for the leading titles to get substantial snippets.
type WikipediaBackend struct {
	Client *http.Client
}

// Name returns the backend identifier.
func (b *WikipediaBackend) Name() string { return "wikipedia" }

// pageSummary is the subset of the REST summary payload we consume.
type pageSummary struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// Search lists articles matching the query and builds one result per title.
// A summary fetch failure for an individual title degrades to the
// opensearch description rather than failing the whole lookup. Results are
// deduplicated by lowercase title.
func (b *WikipediaBackend) Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.SearchResult, error) {
	titles, descriptions, links, err := b.openSearch(ctx, query)
	if err != nil {
		return nil, err
	}

	minLen := cfg.MinSnippetLength
	if minLen <= 0 {
		minLen = 50
	}

	seen := make(map[string]bool)
	var results []types.SearchResult
	for i, title := range titles {
		key := strings.ToLower(title)
		if seen[key] {
			continue
		}

		r := types.SearchResult{Title: title, Source: "wikipedia"}
		if i < len(descriptions) {
			r.Snippet = descriptions[i]
		}
		if i < len(links) {
			r.Link = links[i]
		}

		if i < maxSummaryFetches {
			if summary, err := b.fetchSummary(ctx, title); err == nil && len(summary.Extract) >= minLen {
				if summary.Title != "" {
					r.Title = summary.Title
				}
				r.Snippet = summary.Extract
				if summary.ContentURLs.Desktop.Page != "" {
					r.Link = summary.ContentURLs.Desktop.Page
				}
			}
		}

		if r.Snippet == "" {
			continue
		}
		seen[key] = true
		results = append(results, r)
	}

	return results, nil
}

// openSearch runs the MediaWiki opensearch action. The response is a
// positional JSON array: [query, titles, descriptions, links].
func (b *WikipediaBackend) openSearch(ctx context.Context, query string) (titles, descriptions, links []string, err error) {
	params := url.Values{
		"action": {"opensearch"},
		"search": {query},
		"limit":  {fmt.Sprintf("%d", openSearchLimit)},
		"format": {"json"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wikipediaSearchBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := b.Client.Do(req)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("Wikipedia opensearch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, nil, fmt.Errorf("Wikipedia opensearch returned HTTP %d", resp.StatusCode)
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, nil, nil, fmt.Errorf("parsing opensearch response: %w", err)
	}

	decodeAt := func(idx int, dst *[]string) {
		if idx < len(raw) {
			// Malformed elements leave the slice empty; descriptions
			// and links are optional downstream.
			_ = json.Unmarshal(raw[idx], dst)
		}
	}
	decodeAt(1, &titles)
	decodeAt(2, &descriptions)
	decodeAt(3, &links)

	return titles, descriptions, links, nil
}

// fetchSummary retrieves the REST page summary for one article title.
func (b *WikipediaBackend) fetchSummary(ctx context.Context, title string) (pageSummary, error) {
	page := url.PathEscape(strings.ReplaceAll(title, " ", "_"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wikipediaSummaryBase+page, nil)
	if err != nil {
		return pageSummary{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := b.Client.Do(req)
	if err != nil {
		return pageSummary{}, fmt.Errorf("Wikipedia summary request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return pageSummary{}, fmt.Errorf("Wikipedia summary returned HTTP %d", resp.StatusCode)
	}

	var summary pageSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return pageSummary{}, fmt.Errorf("parsing summary response: %w", err)
	}
	return summary, nil
}
