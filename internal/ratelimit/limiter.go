// Package ratelimit protects the public endpoints with per-IP sliding-window
// limits. The service is stateless, so the limiter is the only component
// that accumulates request state; it lives in memory or in Redis.
package ratelimit

import (
	"context"
	"time"

	"pathwise/internal/ratelimit/models"
)

const (
	// DefaultLimit is requests per window per client IP.
	DefaultLimit = 60
	// DefaultWindow is the sliding window size.
	DefaultWindow = time.Minute
)

// BucketStore counts requests per key inside a sliding window.
type BucketStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error)
	Reset(ctx context.Context, key string) error
	CurrentCount(ctx context.Context, key string) (int, error)
}

// Limiter applies one limit class, keyed by client IP.
type Limiter struct {
	store  BucketStore
	limit  int
	window time.Duration
}

// NewLimiter builds a limiter over the given store. Non-positive limit or
// window fall back to the defaults.
func NewLimiter(store BucketStore, limit int, window time.Duration) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{store: store, limit: limit, window: window}
}

// CheckIP runs the limit check for one client IP.
func (l *Limiter) CheckIP(ctx context.Context, ip string) (*models.RateLimitResult, error) {
	return l.store.Allow(ctx, "ip:"+ip, l.limit, l.window)
}
