package concierge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	key, baseURL string
}

func (c testConfig) APIKey() string         { return c.key }
func (c testConfig) Model() string          { return "test-model" }
func (c testConfig) BaseURL() string        { return c.baseURL }
func (c testConfig) Timeout() time.Duration { return time.Second }

func TestAsk_ReturnsCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "gold?", req.Messages[1].Content)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":" Gold is steady, my lord. "}}]}`))
	}))
	defer srv.Close()

	s := NewConciergeService(testConfig{key: "secret", baseURL: srv.URL}, srv.Client())
	reply := s.Ask(context.Background(), "gold?")
	assert.Equal(t, "Gold is steady, my lord.", reply.Text)
	assert.False(t, reply.Fallback)
	assert.Empty(t, reply.Sources)
}

func TestAsk_CollectsSources(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"citations": ["https://markets.example/gold", "https://markets.example/gold"],
			"choices": [{"message": {
				"role": "assistant",
				"content": "Gold rose overnight.",
				"annotations": [
					{"type": "url_citation", "url_citation": {"url": "https://news.example/watches", "title": "Watches"}},
					{"type": "url_citation", "url_citation": {"url": "https://markets.example/gold"}},
					{"type": "file_citation"}
				]
			}}]
		}`))
	}))
	defer srv.Close()

	reply := NewConciergeService(testConfig{key: "k", baseURL: srv.URL}, srv.Client()).Ask(context.Background(), "gold?")
	assert.Equal(t, "Gold rose overnight.", reply.Text)
	assert.Equal(t, []string{"https://markets.example/gold", "https://news.example/watches"}, reply.Sources)
}

func TestAsk_FallsBack(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer failing.Close()

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer empty.Close()

	cases := map[string]testConfig{
		"no key":     {baseURL: failing.URL},
		"bad status": {key: "k", baseURL: failing.URL},
		"no choices": {key: "k", baseURL: empty.URL},
		"bad host":   {key: "k", baseURL: "http://127.0.0.1:1"},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			reply := NewConciergeService(cfg, nil).Ask(context.Background(), "news")
			assert.Equal(t, Fallback, reply.Text)
			assert.True(t, reply.Fallback)
		})
	}
}
