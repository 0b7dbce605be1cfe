// Package audit captures an append-only trail of evaluation events. Events
// are emitted from domain logic, buffered, and drained by a background worker
// so emission never blocks or fails a request.
package audit

import (
	"context"
	"time"
)

// Action names the kind of event.
type Action string

const (
	// ActionRecommendationServed records one completed discovery evaluation.
	ActionRecommendationServed Action = "recommendation_served"

	// ActionCatalogViewed records a catalog detail lookup.
	ActionCatalogViewed Action = "catalog_viewed"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
	Action    Action    `json:"action"`

	// Subject is the primary entity of the event: the top-ranked country for
	// recommendations, the looked-up country for catalog views, or "none".
	Subject string `json:"subject"`

	// Decision summarizes the outcome, e.g. the top match score.
	Decision string `json:"decision,omitempty"`

	TotalOptions  int `json:"total_options,omitempty"`
	SafeCount     int `json:"safe_count,omitempty"`
	FastCount     int `json:"fast_count,omitempty"`
	MoonshotCount int `json:"moonshot_count,omitempty"`
}

// Store is an append-only sink for events. Implementations must tolerate
// concurrent appends.
type Store interface {
	Append(ctx context.Context, event Event) error
}
