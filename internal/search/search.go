// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search retrieves web results for a question from public APIs.
//
// The provider tries a primary backend (DuckDuckGo Instant Answers) and
// falls back to an encyclopedia lookup (Wikipedia) only when the primary
// path yields nothing. Search never fails past this boundary: any error is
// reported as a warning and degrades to an empty result list, which callers
// treat as "no grounding available".
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/answer-engine/pkg/types"
)

// Backend searches a single web source. Each backend (DuckDuckGo,
// Wikipedia) implements this interface per the Strategy pattern.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.SearchResult, error)
}

// Search queries the primary backend and, only when it returns zero results
// or fails, the fallback. Results are truncated to cfg.TopK with the
// backend's relevance order preserved. A single attempt per path, no
// retries. Warnings for failed paths go to w; the returned slice is empty
// when both paths fail.
func Search(ctx context.Context, query string, primary, fallback Backend, cfg types.SearchConfig, w io.Writer) []types.SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	results := searchOne(ctx, query, primary, cfg, w)
	if len(results) == 0 && fallback != nil {
		results = searchOne(ctx, query, fallback, cfg, w)
	}

	topK := cfg.TopK
	if topK <= 0 {
		topK = 5
	}
	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// searchOne runs a single backend and converts failure into a warning plus
// an empty slice.
func searchOne(ctx context.Context, query string, b Backend, cfg types.SearchConfig, w io.Writer) []types.SearchResult {
	if b == nil {
		return nil
	}
	results, err := b.Search(ctx, query, cfg)
	if err != nil {
		fmt.Fprintf(w, "warning: %s search failed: %v\n", b.Name(), err)
		return nil
	}
	return results
}

// FormatTable writes results as a human-readable table to w.
func FormatTable(results []types.SearchResult, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-10s  %s\n", "Rank", "Title", "Source", "Link")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, r := range results {
		fmt.Fprintf(w, "%-4d  %-50s  %-10s  %s\n",
			i+1, truncate(r.Title, 50), r.Source, r.Link)
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(results []types.SearchResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
