package memory

import (
	"context"
	"sync"
	"time"

	"medflow-insights/internal/suppression"
)

// Store is an in-process suppression store. It backs tests and single-node
// deployments without Redis.
type Store struct {
	mu           sync.RWMutex
	acknowledged map[string]time.Time
	snoozedUntil map[string]time.Time
}

// New creates an empty in-memory suppression store.
func New() *Store {
	return &Store{
		acknowledged: make(map[string]time.Time),
		snoozedUntil: make(map[string]time.Time),
	}
}

// View returns a copy of both maps so the caller holds an immutable snapshot.
func (s *Store) View(ctx context.Context) (suppression.View, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := suppression.View{
		Acknowledged: make(map[string]time.Time, len(s.acknowledged)),
		SnoozedUntil: make(map[string]time.Time, len(s.snoozedUntil)),
	}
	for k, t := range s.acknowledged {
		v.Acknowledged[k] = t
	}
	for k, t := range s.snoozedUntil {
		v.SnoozedUntil[k] = t
	}
	return v, nil
}

// Acknowledge suppresses key permanently until cleared.
func (s *Store) Acknowledge(ctx context.Context, key string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.acknowledged[key] = at
	return nil
}

// ClearAcknowledgement removes a permanent suppression for key.
func (s *Store) ClearAcknowledgement(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.acknowledged, key)
	return nil
}

// Snooze suppresses key until the given instant.
func (s *Store) Snooze(ctx context.Context, key string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snoozedUntil[key] = until
	return nil
}
