// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/answer-engine/pkg/types"
)

func TestNewClient_SetsUserAgent(t *testing.T) {
	var gotAgent string
	ts := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer ts.Close()

	client := NewClient(types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "answer-engine/0.1"})
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "answer-engine/0.1", gotAgent)
}

func TestNewClient_KeepsExplicitUserAgent(t *testing.T) {
	var gotAgent string
	ts := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer ts.Close()

	client := NewClient(types.HTTPConfig{UserAgent: "answer-engine/0.1"})
	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "custom/1.0")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "custom/1.0", gotAgent)
}

func TestNewClient_NoUserAgentConfigured(t *testing.T) {
	client := NewClient(types.HTTPConfig{Timeout: time.Second})
	assert.Equal(t, time.Second, client.Timeout)
	assert.Same(t, http.DefaultTransport, client.Transport)
}
