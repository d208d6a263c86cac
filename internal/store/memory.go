// internal/store/memory.go
//
// In-memory implementation of the Store interface.
//
// Characteristics:
//   - Keeps rounds in insertion order in a slice.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"sync"
)

// memory is an in-memory slice-based Store implementation.
type memory struct {
	mu     sync.RWMutex  // guards rounds
	rounds []RoundRecord // oldest first
	ids    map[string]struct{}
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{ids: make(map[string]struct{})}
}

// Save appends the round. IDs must be unique.
func (m *memory) Save(ctx context.Context, r RoundRecord) error {
	if r.ID == "" {
		return ErrMissingID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.ids[r.ID]; dup {
		return ErrDuplicateID
	}
	m.ids[r.ID] = struct{}{}
	m.rounds = append(m.rounds, r)
	return nil
}

// Recent returns up to limit rounds, newest first.
func (m *memory) Recent(ctx context.Context, limit int) ([]RoundRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []RoundRecord{}
	for i := len(m.rounds) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.rounds[i])
	}
	return out, nil
}

func (m *memory) Summary(ctx context.Context) (Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return summarize(m.rounds), nil
}

func (m *memory) Close() error { return nil }
