// Package memory provides an in-process ring of recent audit events. It backs
// development setups and tests; production deployments add the kafka store.
package memory

import (
	"context"
	"sync"

	"pathwise/pkg/platform/audit"
)

// defaultCapacity bounds retained events; the oldest are evicted first.
const defaultCapacity = 1024

// Store keeps the most recent events in memory.
type Store struct {
	mu       sync.RWMutex
	events   []audit.Event
	capacity int
}

// New builds a memory store. capacity <= 0 selects the default.
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Store{capacity: capacity}
}

// Append records an event, evicting the oldest once at capacity.
func (s *Store) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	if len(s.events) > s.capacity {
		s.events = s.events[len(s.events)-s.capacity:]
	}
	return nil
}

// Recent returns up to n most recent events, newest last.
func (s *Store) Recent(n int) []audit.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 || n > len(s.events) {
		n = len(s.events)
	}
	out := make([]audit.Event, n)
	copy(out, s.events[len(s.events)-n:])
	return out
}
