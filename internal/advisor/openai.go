package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pathwise/internal/catalog"
	"pathwise/internal/discovery"
)

const (
	defaultModel       = "gpt-4o-mini"
	defaultTemperature = 0.7
	defaultMaxTokens   = 120
	defaultTimeout     = 5 * time.Second
)

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	httpClient  *http.Client
	endpoint    string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
}

// New builds an advisor client from config, applying defaults.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("advisor endpoint is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("advisor API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		endpoint:    cfg.Endpoint,
		apiKey:      cfg.APIKey,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// Note asks for a two-sentence strategic note on the top-ranked destination.
func (c *Client) Note(ctx context.Context, p discovery.Profile, top discovery.ScoreResult, country catalog.Country) (string, error) {
	requestBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You are a helpful, concise academic advisor.",
			},
			{
				"role":    "user",
				"content": buildPrompt(p, top, country),
			},
		},
		"temperature": c.temperature,
		"max_tokens":  c.maxTokens,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("marshal advisor request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(string(jsonBody)))
	if err != nil {
		return "", fmt.Errorf("create advisor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("advisor request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read advisor response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advisor API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response chatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("parse advisor response: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	note := strings.TrimSpace(response.Choices[0].Message.Content)
	if note == "" {
		return "", fmt.Errorf("empty advisor note")
	}
	return note, nil
}

// buildPrompt mirrors the consultant briefing: profile, target, trend, and
// the reasoning trail as the risk summary.
func buildPrompt(p discovery.Profile, top discovery.ScoreResult, country catalog.Country) string {
	var b strings.Builder
	b.WriteString("Act as a Senior Study Abroad Consultant.\n")
	b.WriteString("Write a short, strategic 2-sentence note for a student.\n\n")
	fmt.Fprintf(&b, "Student: %s | Budget: %gL\n", p.MajorInterest, p.BudgetMaxLakhs)
	fmt.Fprintf(&b, "Target: %s (Match Score: %d/100)\n", top.Country, top.MatchScore)
	fmt.Fprintf(&b, "Trend Alert: %s\n", country.TrendAlert)
	fmt.Fprintf(&b, "Risks: %s\n\n", strings.Join(top.Reasoning, ", "))
	b.WriteString("Advice:")
	return b.String()
}

// chatResponse is the subset of the chat-completions reply we consume.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
