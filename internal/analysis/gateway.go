// Package analysis builds the generative-service prompt and performs the
// single request/response analysis call, including response sanitization and
// strict structural validation.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/personality-quiz/internal/schemas"
	"github.com/jonathan/personality-quiz/internal/types"
)

const (
	defaultEndpoint    = "https://api.anthropic.com/v1/messages"
	defaultModel       = "claude-sonnet-4-20250514"
	defaultMaxTokens   = 4096
	defaultTemperature = 0.9
	defaultTimeout     = 30 * time.Second

	apiVersionHeaderKey = "anthropic-version"
	apiVersion          = "2023-06-01"
	apiKeyHeaderKey     = "x-api-key"
)

// Config holds the gateway configuration. The credential is held server-side
// and passed in explicitly; nothing in this package reads the environment.
type Config struct {
	Endpoint    string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// withDefaults fills unset fields with the stock values.
func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = defaultEndpoint
	}
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = defaultMaxTokens
	}
	if c.Temperature == 0 {
		c.Temperature = defaultTemperature
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	return c
}

// Gateway performs the analysis call against the generative service. It never
// retries and never caches: every submission is a fresh prompt/response cycle.
type Gateway struct {
	config     Config
	httpClient *http.Client
}

// NewGateway creates a gateway from the given configuration.
func NewGateway(config Config) *Gateway {
	config = config.withDefaults()
	return &Gateway{
		config:     config,
		httpClient: &http.Client{},
	}
}

// messagesRequest is the request envelope for the messages API
type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse is the response envelope; the analysis payload lives in
// the first content block's text.
type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Analyze sends the prompt as a single user message and returns the decoded
// analysis. Every failure is a *GatewayError; the caller is expected to
// recover through the fallback recommender rather than surface it.
func (g *Gateway) Analyze(ctx context.Context, prompt string) (*types.PersonalityAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	body, err := json.Marshal(messagesRequest{
		Model:       g.config.Model,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
		Messages:    []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return nil, &GatewayError{Kind: KindMalformedResponse, Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &GatewayError{Kind: KindUpstreamRejected, Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeaderKey, g.config.APIKey)
	req.Header.Set(apiVersionHeaderKey, apiVersion)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &GatewayError{Kind: KindTimeout, Cause: err}
		}
		return nil, &GatewayError{Kind: KindUpstreamRejected, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GatewayError{Kind: KindUpstreamRejected, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &GatewayError{
			Kind:   KindUpstreamRejected,
			Status: resp.StatusCode,
			Body:   string(respBody),
		}
	}

	var envelope messagesResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, &GatewayError{Kind: KindMalformedResponse, Cause: err}
	}
	if len(envelope.Content) == 0 || strings.TrimSpace(envelope.Content[0].Text) == "" {
		return nil, &GatewayError{Kind: KindMalformedResponse, Body: string(respBody)}
	}

	return decodeAnalysis(envelope.Content[0].Text)
}

// decodeAnalysis sanitizes the raw text, validates it against the analysis
// schema (closed field set, exact list arities), and decodes it.
func decodeAnalysis(text string) (*types.PersonalityAnalysis, error) {
	cleaned := CleanJSONBlock(text)

	if err := schemas.ValidateAnalysis([]byte(cleaned)); err != nil {
		return nil, &GatewayError{Kind: KindMalformedResponse, Cause: err}
	}

	var result types.PersonalityAnalysis
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, &GatewayError{Kind: KindMalformedResponse, Cause: err}
	}
	if err := result.Validate(); err != nil {
		return nil, &GatewayError{Kind: KindMalformedResponse, Cause: err}
	}

	return &result, nil
}
