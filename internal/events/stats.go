package events

import (
	"context"
	"sync"
)

// Stats accumulates per-code visit counts from consumed events. Counts live
// in process memory only, like everything else in this service.
type Stats struct {
	mu      sync.RWMutex
	visits  map[string]int64
	created int64
}

// NewStats creates an empty stats accumulator.
func NewStats() *Stats {
	return &Stats{visits: make(map[string]int64)}
}

// HandleLinkCreated records a newly allocated link.
func (s *Stats) HandleLinkCreated(_ context.Context, _ *LinkCreatedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.created++

	return nil
}

// HandleLinkVisited increments the visit count for the event's code.
func (s *Stats) HandleLinkVisited(_ context.Context, event *LinkVisitedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visits[event.Code]++

	return nil
}

// HandleLinkDeleted drops the visit count for a removed link.
func (s *Stats) HandleLinkDeleted(_ context.Context, event *LinkDeletedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.visits, event.Code)

	return nil
}

// Visits returns the recorded visit count for code.
func (s *Stats) Visits(code string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.visits[code]
}

// CreatedTotal returns the number of links created since startup.
func (s *Stats) CreatedTotal() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.created
}
