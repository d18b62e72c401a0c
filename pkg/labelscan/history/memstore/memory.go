package memstore

import (
	"context"
	"sync"

	"github.com/foodlens/labelscan/pkg/labelscan/history"
)

// Store is an in-memory implementation of history.Store, used in tests
// and when no database path is configured.
type Store struct {
	mu      sync.RWMutex
	entries []history.Entry // most recent first
}

// New creates an empty in-memory history.
func New() *Store {
	return &Store{}
}

// Close implements history.Store.
func (s *Store) Close() error { return nil }

// Append prepends the entry and evicts anything past capacity.
func (s *Store) Append(ctx context.Context, e history.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]history.Entry{e}, s.entries...)
	if len(s.entries) > history.Capacity {
		s.entries = s.entries[:history.Capacity]
	}
	return nil
}

// Recent returns up to limit entries, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]history.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.entries) {
		limit = len(s.entries)
	}
	out := make([]history.Entry, limit)
	copy(out, s.entries[:limit])
	return out, nil
}
