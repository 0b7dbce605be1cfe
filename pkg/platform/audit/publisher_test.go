package audit

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitQueuesEvent(t *testing.T) {
	p := NewPublisher(2, slog.New(slog.DiscardHandler))

	p.Emit(context.Background(), Event{Action: ActionRecommendationServed, RequestID: "r1"})

	select {
	case event := <-p.Inbox():
		assert.Equal(t, ActionRecommendationServed, event.Action)
		assert.Equal(t, "r1", event.RequestID)
		assert.False(t, event.Timestamp.IsZero(), "zero timestamp should be stamped")
	default:
		t.Fatal("expected queued event")
	}
}

func TestEmitDropsWhenInboxFull(t *testing.T) {
	p := NewPublisher(1, slog.New(slog.DiscardHandler))

	p.Emit(context.Background(), Event{RequestID: "kept"})
	p.Emit(context.Background(), Event{RequestID: "dropped"})

	require.Len(t, p.Inbox(), 1)
	event := <-p.Inbox()
	assert.Equal(t, "kept", event.RequestID)
}

func TestEmitOnNilPublisher(t *testing.T) {
	var p *Publisher
	// Must be a no-op, mirrors the optional-collaborator wiring.
	p.Emit(context.Background(), Event{RequestID: "ignored"})
}

func TestNewPublisherDefaultBuffer(t *testing.T) {
	p := NewPublisher(0, nil)
	assert.Equal(t, 256, cap(p.inbox))
}
