package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"

	// Fixed generation parameters: deterministic sampling, and a ceiling
	// high enough that multi-line messages are never truncated.
	temperature     = 0.0
	maxOutputTokens = 4096
)

// Config holds Gemini specific settings. Model, BaseURL and HTTPClient are
// optional; BaseURL and HTTPClient exist so tests can point the client at a
// local server.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Client calls the Gemini generateContent API. The endpoint and credential
// are fixed at construction and never change, so a single Client is safe
// for concurrent use.
type Client struct {
	endpoint string
	client   *http.Client
}

func New(cfg Config) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		endpoint: fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
			base, url.PathEscape(model), url.QueryEscape(cfg.APIKey)),
		client: httpClient,
	}
}

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// Generate sends the prompt to the API and returns the generated text,
// trimmed. It performs exactly one request per call with no retries.
// Failures are typed: *TransportError when the exchange could not be
// completed, *ServiceError on a non-success status, *MalformedResponseError
// when the body does not match the expected schema.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	b, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxOutputTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", &ServiceError{Status: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return "", &TransportError{Err: fmt.Errorf("decode response: %w", err)}
	}

	return extractText(v)
}
