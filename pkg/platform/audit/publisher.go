package audit

import (
	"context"
	"log/slog"
	"time"
)

// Publisher accepts events from request paths and hands them to the worker
// through a bounded inbox. Emit never blocks: when the inbox is full the
// event is dropped and counted, because a slow audit sink must not slow the
// scoring pipeline.
type Publisher struct {
	inbox  chan Event
	logger *slog.Logger
}

// NewPublisher builds a publisher with the given inbox capacity.
func NewPublisher(buffer int, logger *slog.Logger) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Publisher{
		inbox:  make(chan Event, buffer),
		logger: logger,
	}
}

// Emit queues an event for background persistence. A zero timestamp is
// stamped with the current time.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if p == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case p.inbox <- event:
	default:
		if p.logger != nil {
			p.logger.WarnContext(ctx, "audit inbox full, event dropped",
				"action", event.Action,
				"request_id", event.RequestID,
			)
		}
	}
}

// Inbox exposes the event channel for the worker.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}
