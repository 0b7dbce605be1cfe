// Package worker drains the audit inbox into one or more stores.
package worker

import (
	"context"
	"log/slog"

	"pathwise/pkg/platform/audit"
)

// Worker consumes audit events from a channel and fans them out to every
// configured store. Store failures are logged and skipped; the audit trail is
// best-effort by design and must never stop the drain loop.
type Worker struct {
	stores []audit.Store
	inbox  <-chan audit.Event
	logger *slog.Logger
}

func New(inbox <-chan audit.Event, logger *slog.Logger, stores ...audit.Store) *Worker {
	return &Worker{stores: stores, inbox: inbox, logger: logger}
}

// Run drains the inbox until the context is canceled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			for _, store := range w.stores {
				if err := store.Append(ctx, event); err != nil && w.logger != nil {
					w.logger.ErrorContext(ctx, "audit append failed",
						"action", event.Action,
						"error", err,
					)
				}
			}
		}
	}
}
