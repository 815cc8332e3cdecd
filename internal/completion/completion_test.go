package completion

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

// TestStaticAndEcho checks the offline completers.
func TestStaticAndEcho(t *testing.T) {
	out, err := (&Static{Response: "    return 1"}).Complete(context.Background(), "def f():")
	require.NoError(t, err)
	assert.Equal(t, "    return 1", out)

	out, err = (&Echo{}).Complete(context.Background(), "def f():")
	require.NoError(t, err)
	assert.Equal(t, "def f():", out)
}

// TestHTTPComplete checks the request shape and response parsing against a
// stub server.
func TestHTTPComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])
		assert.Equal(t, "def f():", req["prompt"])
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"text": "    return 42"}},
		})
	}))
	defer srv.Close()

	c := NewHTTP(HTTPConfig{BaseURL: srv.URL, APIKey: "sk-test", Model: "test-model"})
	out, err := c.Complete(context.Background(), "def f():")
	require.NoError(t, err)
	assert.Equal(t, "    return 42", out)
}

// TestHTTPCompleteErrors checks status and payload failure paths.
func TestHTTPCompleteErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewHTTP(HTTPConfig{BaseURL: srv.URL})
	_, err := c.Complete(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer empty.Close()
	c = NewHTTP(HTTPConfig{BaseURL: empty.URL})
	_, err = c.Complete(context.Background(), "x")
	assert.Error(t, err)
}

// TestHTTPCompleteContextCancel checks cancellation propagates.
func TestHTTPCompleteContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	c := NewHTTP(HTTPConfig{BaseURL: srv.URL})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.Complete(ctx, "x")
	assert.Error(t, err)
}
