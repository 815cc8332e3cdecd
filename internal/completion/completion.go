// Package completion fetches code completions for (possibly obfuscated)
// prompts from an OpenAI-compatible completions endpoint, or from local
// stubs for offline runs.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Completer produces a completion for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Static always answers with a fixed text. Useful for offline pipeline runs
// and tests.
type Static struct {
	Response string
}

func (s *Static) Complete(_ context.Context, _ string) (string, error) {
	return s.Response, nil
}

// Echo answers with the prompt itself, which makes utility scores reflect
// prompt/solution overlap only.
type Echo struct{}

func (e *Echo) Complete(_ context.Context, prompt string) (string, error) {
	return prompt, nil
}

// HTTPConfig configures an HTTP completer.
type HTTPConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	Logger      *zap.Logger
}

// HTTP calls the /v1/completions endpoint of an OpenAI-compatible server.
type HTTP struct {
	cfg    HTTPConfig
	client *http.Client
	log    *zap.Logger
}

// NewHTTP returns an HTTP completer. Zero config fields get workable
// defaults; a nil logger is replaced with a no-op one.
func NewHTTP(cfg HTTPConfig) *HTTP {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 256
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTP{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

type completionRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (h *HTTP) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:       h.cfg.Model,
		Prompt:      prompt,
		MaxTokens:   h.cfg.MaxTokens,
		Temperature: h.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	url := strings.TrimRight(h.cfg.BaseURL, "/") + "/v1/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.cfg.APIKey)
	}

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return "", fmt.Errorf("reading completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		snippet := string(data)
		if len(snippet) > 300 {
			snippet = snippet[:300]
		}
		return "", fmt.Errorf("completion endpoint returned %d: %s", resp.StatusCode, snippet)
	}

	var parsed completionResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decoding completion response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("completion endpoint error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion endpoint returned no choices")
	}

	h.log.Debug("completion fetched",
		zap.String("model", h.cfg.Model),
		zap.Int("prompt_len", len(prompt)),
		zap.Int("completion_len", len(parsed.Choices[0].Text)),
		zap.Duration("elapsed", time.Since(start)))
	return parsed.Choices[0].Text, nil
}
