// Package llm implements the generative capability boundary.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/musenotes/muse/pkg/core"
)

const (
	defaultModel    = "gemini-2.0-flash"
	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
)

// Gemini generates text through the Gemini generateContent REST endpoint.
// One attempt per request; retry and timeout policy is the caller's.
type Gemini struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// Option configures a Gemini client.
type Option func(*Gemini)

// WithModel overrides the model name.
func WithModel(model string) Option {
	return func(g *Gemini) {
		g.model = model
	}
}

// WithEndpoint overrides the API base URL. Used by tests.
func WithEndpoint(url string) Option {
	return func(g *Gemini) {
		g.endpoint = url
	}
}

// WithHTTPClient overrides the HTTP client, e.g. to set a timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gemini) {
		g.client = client
	}
}

// NewGemini creates a client. An empty apiKey falls back to the
// GEMINI_API_KEY environment variable.
func NewGemini(apiKey string, opts ...Option) (*Gemini, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: missing API key")
	}

	g := &Gemini{
		apiKey:   apiKey,
		model:    defaultModel,
		endpoint: defaultEndpoint,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate implements core.Generator.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.endpoint, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("gemini: %s: %s", resp.Status, detail)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}

var _ core.Generator = (*Gemini)(nil)
