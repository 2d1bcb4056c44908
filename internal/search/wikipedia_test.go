// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/answer-engine/pkg/types"
)

// wikiTestBackend routes the opensearch and summary endpoints to a single
// httptest server distinguished by path.
func wikiTestBackend(t *testing.T, openSearch http.HandlerFunc, summary http.HandlerFunc) *WikipediaBackend {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/w/api.php", openSearch)
	mux.HandleFunc("/api/rest_v1/page/summary/", summary)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	origSearch, origSummary := wikipediaSearchBase, wikipediaSummaryBase
	wikipediaSearchBase = ts.URL + "/w/api.php"
	wikipediaSummaryBase = ts.URL + "/api/rest_v1/page/summary/"
	t.Cleanup(func() {
		wikipediaSearchBase = origSearch
		wikipediaSummaryBase = origSummary
	})

	return &WikipediaBackend{Client: ts.Client()}
}

func openSearchPayload(titles ...string) string {
	var quoted, descs, links []string
	for _, title := range titles {
		quoted = append(quoted, fmt.Sprintf("%q", title))
		descs = append(descs, fmt.Sprintf("%q", "Opensearch description for "+title+" padded out to be substantial enough."))
		links = append(links, fmt.Sprintf("%q", "https://en.wikipedia.org/wiki/"+strings.ReplaceAll(title, " ", "_")))
	}
	return fmt.Sprintf(`["q", [%s], [%s], [%s]]`,
		strings.Join(quoted, ","), strings.Join(descs, ","), strings.Join(links, ","))
}

func TestWikipediaSearch_SummaryPath(t *testing.T) {
	extract := "Quantum computing is a type of computation whose operations harness quantum mechanics."
	b := wikiTestBackend(t,
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "opensearch", r.URL.Query().Get("action"))
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			w.Write([]byte(openSearchPayload("Quantum computing")))
		},
		func(w http.ResponseWriter, r *http.Request) {
			assert.True(t, strings.HasSuffix(r.URL.Path, "Quantum_computing"))
			fmt.Fprintf(w, `{
				"title": "Quantum computing - Wikipedia",
				"extract": %q,
				"content_urls": {"desktop": {"page": "https://en.wikipedia.org/wiki/Quantum_computing"}}
			}`, extract)
		})

	results, err := b.Search(context.Background(), "quantum computing", types.SearchConfig{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Quantum computing - Wikipedia", results[0].Title)
	assert.Equal(t, extract, results[0].Snippet)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Quantum_computing", results[0].Link)
	assert.Equal(t, "wikipedia", results[0].Source)
}

func TestWikipediaSearch_SummaryFailureKeepsDescription(t *testing.T) {
	b := wikiTestBackend(t,
		func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(openSearchPayload("Photosynthesis")))
		},
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

	results, err := b.Search(context.Background(), "photosynthesis", types.SearchConfig{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Photosynthesis", results[0].Title)
	assert.Contains(t, results[0].Snippet, "Opensearch description")
}

func TestWikipediaSearch_DeduplicatesTitles(t *testing.T) {
	b := wikiTestBackend(t,
		func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(openSearchPayload("Go", "go", "GO")))
		},
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

	results, err := b.Search(context.Background(), "go", types.SearchConfig{})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestWikipediaSearch_OpenSearchError(t *testing.T) {
	b := wikiTestBackend(t,
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		func(w http.ResponseWriter, _ *http.Request) {
			t.Error("summary endpoint must not be hit when opensearch fails")
		})

	_, err := b.Search(context.Background(), "q", types.SearchConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestWikipediaSearch_MalformedOpenSearch(t *testing.T) {
	b := wikiTestBackend(t,
		func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"not": "an array"}`))
		},
		func(w http.ResponseWriter, _ *http.Request) {})

	_, err := b.Search(context.Background(), "q", types.SearchConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing opensearch response")
}
