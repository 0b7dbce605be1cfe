// Package advisor calls an OpenAI-compatible chat endpoint for a short
// consultant note about the top-ranked destination. The call is optional and
// bounded; callers fall back to the deterministic narrative note whenever it
// errors, times out, or is disabled.
package advisor

import "time"

// Config holds the advisor client settings.
type Config struct {
	// Endpoint is the full chat-completions URL. Empty disables the advisor.
	Endpoint string
	APIKey   string
	Model    string

	Temperature float64
	MaxTokens   int

	// Timeout bounds each call end to end.
	Timeout time.Duration
}

// Enabled reports whether an advisor client should be constructed at all.
func (c Config) Enabled() bool {
	return c.Endpoint != "" && c.APIKey != ""
}
