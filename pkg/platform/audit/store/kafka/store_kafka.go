// Package kafka publishes audit events to a Kafka topic. The audit worker is
// already asynchronous, so produces are fire-and-forget with a logging
// callback rather than synchronous acks.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"pathwise/pkg/platform/audit"
)

// Store publishes events to a single topic.
type Store struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// New dials the given brokers. Returns an error when no brokers are
// configured; callers treat the kafka sink as optional.
func New(brokers []string, topic string, logger *slog.Logger) (*Store, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka audit store: no brokers configured")
	}
	if topic == "" {
		topic = "pathwise.audit"
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka audit store: %w", err)
	}

	return &Store{client: client, topic: topic, logger: logger}, nil
}

// Append produces the event as a JSON record keyed by request ID.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.RequestID),
		Value: payload,
	}
	s.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil && s.logger != nil {
			s.logger.Error("audit kafka produce failed",
				"topic", s.topic,
				"action", event.Action,
				"error", err,
			)
		}
	})
	return nil
}

// Close flushes outstanding produces and releases the client.
func (s *Store) Close() {
	s.client.Close()
}
