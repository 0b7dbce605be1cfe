package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for rate limiting.
type Metrics struct {
	// Requests rejected with 429.
	Rejections prometheus.Counter

	// Limit checks that errored and failed open.
	CheckFailures prometheus.Counter
}

// New creates a Metrics instance with all rate-limit metrics registered.
func New() *Metrics {
	return &Metrics{
		Rejections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pathwise_ratelimit_rejections_total",
			Help: "Requests rejected by the per-IP rate limit",
		}),
		CheckFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pathwise_ratelimit_check_failures_total",
			Help: "Rate-limit store errors that failed open",
		}),
	}
}

// CountRejection records one rejected request.
func (m *Metrics) CountRejection() {
	if m != nil {
		m.Rejections.Inc()
	}
}

// CountCheckFailure records one failed-open limit check.
func (m *Metrics) CountCheckFailure() {
	if m != nil {
		m.CheckFailures.Inc()
	}
}
