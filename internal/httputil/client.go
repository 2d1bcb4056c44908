// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"net/http"

	"github.com/pdiddy/answer-engine/pkg/types"
)

// NewClient builds an HTTP client from shared HTTP settings. Every request
// through the client carries cfg.UserAgent unless the caller already set
// one. Connections are per-call; no pooling tuning is needed at this scale.
func NewClient(cfg types.HTTPConfig) *http.Client {
	transport := http.RoundTripper(http.DefaultTransport)
	if cfg.UserAgent != "" {
		transport = &userAgentTransport{agent: cfg.UserAgent, next: transport}
	}
	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
	}
}

// userAgentTransport stamps a default User-Agent on outgoing requests.
type userAgentTransport struct {
	agent string
	next  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		clone := req.Clone(req.Context())
		clone.Header.Set("User-Agent", t.agent)
		req = clone
	}
	return t.next.RoundTrip(req)
}
