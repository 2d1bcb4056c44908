// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Answer is the terminal output of one question: the generated text plus
// the search results it was grounded on. Sources keep the order the search
// provider returned them in; the list is empty when no grounding was found.
type Answer struct {
	// Text is the generated answer.
	Text string `json:"text" yaml:"text"`

	// Sources lists the search results included in the prompt, in
	// provider relevance order.
	Sources []SearchResult `json:"sources" yaml:"sources"`
}
