package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"pathwise/internal/ratelimit/metrics"
	"pathwise/internal/ratelimit/models"
	"pathwise/pkg/platform/httputil"
	"pathwise/pkg/platform/middleware/metadata"
)

// RateLimiter checks whether a client IP may proceed.
type RateLimiter interface {
	CheckIP(ctx context.Context, ip string) (*models.RateLimitResult, error)
}

// Middleware enforces per-IP rate limits on the routes it wraps.
type Middleware struct {
	limiter  RateLimiter
	logger   *slog.Logger
	metrics  *metrics.Metrics
	disabled bool
}

// Option configures the middleware.
type Option func(*Middleware)

// WithDisabled turns enforcement off entirely, for tests and local runs.
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) { m.disabled = disabled }
}

// WithMetrics wires prometheus metrics.
func WithMetrics(met *metrics.Metrics) Option {
	return func(m *Middleware) { m.metrics = met }
}

// New builds the rate-limit middleware.
func New(limiter RateLimiter, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{limiter: limiter, logger: logger}
	for _, opt := range opts {
		opt(m)
	}
	if m.disabled && logger != nil {
		logger.Info("rate limiting disabled")
	}
	return m
}

// RateLimit wraps a handler with the per-IP check. Store errors fail open:
// an unreachable Redis must not take the API down with it.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.disabled {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		ip := metadata.GetClientIP(ctx)

		result, err := m.limiter.CheckIP(ctx, ip)
		if err != nil {
			m.metrics.CountCheckFailure()
			m.logger.ErrorContext(ctx, "rate limit check failed", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		addRateLimitHeaders(w, result)

		if !result.Allowed {
			m.metrics.CountRejection()
			writeRateLimitExceeded(w, result)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func addRateLimitHeaders(w http.ResponseWriter, result *models.RateLimitResult) {
	if result == nil {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func writeRateLimitExceeded(w http.ResponseWriter, result *models.RateLimitResult) {
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, &models.RateLimitExceededResponse{
		Error:      "rate_limit_exceeded",
		Message:    "Too many requests from this IP address. Please try again later.",
		RetryAfter: result.RetryAfter,
	})
}
