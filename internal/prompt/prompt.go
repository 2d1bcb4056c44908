// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt assembles the grounded generation prompt from a question
// and retrieved search results.
package prompt

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/answer-engine/pkg/types"
)

// defaultSnippetBudget is the per-snippet character budget applied when the
// configuration leaves it unset.
const defaultSnippetBudget = 500

// groundedTmpl is used when at least one search result is available. The
// model is told to answer from the enumerated sources and cite them.
var groundedTmpl = template.Must(template.New("grounded").Parse(`You are a helpful assistant. Answer the question below using ONLY the information provided in the sources.

{{range .Sources}}Source {{.Number}}: {{.Title}} — {{.Snippet}}

{{end}}Question: {{.Question}}

Instructions:
- Give a clear, direct answer.
- Use information from the sources above and cite them by number, e.g. [1].
- Be concise (2-3 paragraphs maximum).
- If the sources do not contain enough information, say so.

Answer:`))

// ungroundedTmpl is the explicit no-sources branch: the model is told that
// retrieval found nothing and to answer from its own knowledge.
var ungroundedTmpl = template.Must(template.New("ungrounded").Parse(`You are a helpful assistant. No external sources were found for the question below, so answer from your own knowledge.

Question: {{.Question}}

Instructions:
- Give a clear, direct answer.
- Be concise (2-3 paragraphs maximum).
- If you are unsure, say so rather than guessing.

Answer:`))

// numberedSource is one enumerated source entry in the grounded template.
type numberedSource struct {
	Number  int
	Title   string
	Snippet string
}

// Build renders the prompt for a question and its retrieved results. An
// empty result list selects the ungrounded template; otherwise each snippet
// is truncated to the configured character budget and enumerated in input
// order. No summarization, no re-ranking.
func Build(question string, results []types.SearchResult, cfg types.PromptConfig) (string, error) {
	budget := cfg.SnippetBudget
	if budget <= 0 {
		budget = defaultSnippetBudget
	}

	var buf strings.Builder

	if len(results) == 0 {
		if err := ungroundedTmpl.Execute(&buf, struct{ Question string }{question}); err != nil {
			return "", fmt.Errorf("rendering prompt: %w", err)
		}
		return buf.String(), nil
	}

	sources := make([]numberedSource, len(results))
	for i, r := range results {
		sources[i] = numberedSource{
			Number:  i + 1,
			Title:   r.Title,
			Snippet: truncateSnippet(r.Snippet, budget),
		}
	}

	data := struct {
		Question string
		Sources  []numberedSource
	}{question, sources}

	if err := groundedTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}
	return buf.String(), nil
}

// truncateSnippet cuts a snippet to the character budget without splitting
// a multi-byte rune.
func truncateSnippet(s string, budget int) string {
	if len(s) <= budget {
		return s
	}
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return string(runes[:budget]) + "..."
}
