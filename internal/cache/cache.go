// Package cache implements the per-pipeline memoization slots. Each slot
// retains at most one result at a time, keyed by the call parameters: a
// repeated identical call is served from memory, a different key evicts
// the previous entry and recomputes. There is no time-based expiry; only
// the explicit invalidation signal clears a slot.
package cache

import (
	"sync"

	"mksports/aggregator/internal/metrics"
)

// Slot is a single-entry memo for one pipeline.
type Slot struct {
	name  string
	mu    sync.Mutex
	key   string
	value any
	ok    bool
}

// NewSlot creates a named slot. The name labels cache metrics.
func NewSlot(name string) *Slot {
	return &Slot{name: name}
}

// Get returns the cached value when key matches the stored entry,
// otherwise runs compute and stores its result under key. The lock is
// held across compute, so two concurrent callers with the same key pay
// for at most one computation.
func (s *Slot) Get(key string, compute func() any) any {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ok && s.key == key {
		metrics.RecordCacheHit(s.name)
		return s.value
	}

	metrics.RecordCacheMiss(s.name)
	s.value = compute()
	s.key = key
	s.ok = true
	return s.value
}

// Invalidate clears the slot; the next Get recomputes.
func (s *Slot) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.key = ""
	s.value = nil
	s.ok = false
}

// Service groups the three pipeline slots behind one invalidation signal.
type Service struct {
	Scores      *Slot
	Fixtures    *Slot
	Predictions *Slot
}

// NewService creates the slot set for all pipelines.
func NewService() *Service {
	return &Service{
		Scores:      NewSlot("scores"),
		Fixtures:    NewSlot("fixtures"),
		Predictions: NewSlot("predictions"),
	}
}

// InvalidateAll clears every pipeline slot simultaneously.
func (s *Service) InvalidateAll() {
	s.Scores.Invalidate()
	s.Fixtures.Invalidate()
	s.Predictions.Invalidate()
	metrics.RecordCacheInvalidation()
}
