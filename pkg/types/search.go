// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the answer-engine pipeline.
package types

// SearchResult is a single web search hit returned by a search backend.
// Results are immutable once produced; ordering follows the backend's
// relevance ranking and is preserved all the way into Answer.Sources.
type SearchResult struct {
	// Title is the result title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Snippet is the descriptive text for the result (abstract, summary,
	// or topic text depending on the source).
	Snippet string `json:"snippet" yaml:"snippet"`

	// Link is the URL of the result page. May be empty when the source
	// did not provide one.
	Link string `json:"link" yaml:"link"`

	// Source identifies which backend found this result
	// (e.g. "duckduckgo", "wikipedia").
	Source string `json:"source" yaml:"source"`
}
