// Package models holds the rate-limit value types shared by the stores,
// limiter, and middleware.
package models

import "time"

// RateLimitResult is the outcome of one rate-limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
	// RetryAfter is seconds until the client may retry; zero when allowed.
	RetryAfter int
}

// RateLimitExceededResponse is the 429 body.
type RateLimitExceededResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}
