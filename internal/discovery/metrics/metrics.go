package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the discovery module.
type Metrics struct {
	// Full evaluation latency, classification plus response enrichment.
	EvaluateLatency prometheus.Histogram

	// Scored countries per evaluation, by archetype bucket.
	BucketResults *prometheus.CounterVec

	// Eligible options per evaluation; the zero bucket tracks how often a
	// profile clears no gate at all.
	EligibleOptions prometheus.Histogram

	// Advisor calls that fell back to the narrative note.
	AdvisorFallbacks prometheus.Counter

	// Advisor call latency, successes only.
	AdvisorLatency prometheus.Histogram
}

// New creates a Metrics instance with all discovery metrics registered.
func New() *Metrics {
	return &Metrics{
		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathwise_discovery_evaluate_duration_seconds",
			Help:    "Duration of a full discovery evaluation",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),

		BucketResults: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pathwise_discovery_results_total",
			Help: "Total scored countries by archetype bucket",
		}, []string{"archetype"}),

		EligibleOptions: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathwise_discovery_eligible_options",
			Help:    "Eligible countries per evaluation",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		}),

		AdvisorFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pathwise_advisor_fallbacks_total",
			Help: "Advisor calls that errored or timed out and used the narrative fallback",
		}),

		AdvisorLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathwise_advisor_duration_seconds",
			Help:    "Duration of successful advisor calls",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

// CountBucket records scored countries landing in an archetype bucket.
func (m *Metrics) CountBucket(archetype string, n int) {
	if m != nil && n > 0 {
		m.BucketResults.WithLabelValues(archetype).Add(float64(n))
	}
}

// ObserveEligibleOptions records how many countries passed the gate.
func (m *Metrics) ObserveEligibleOptions(n int) {
	if m != nil {
		m.EligibleOptions.Observe(float64(n))
	}
}

// CountAdvisorFallback records one fallback to the narrative note.
func (m *Metrics) CountAdvisorFallback() {
	if m != nil {
		m.AdvisorFallbacks.Inc()
	}
}

// ObserveAdvisorLatency records the duration of a successful advisor call.
func (m *Metrics) ObserveAdvisorLatency(d time.Duration) {
	if m != nil {
		m.AdvisorLatency.Observe(d.Seconds())
	}
}
