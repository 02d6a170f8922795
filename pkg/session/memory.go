package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/leaguedesk/airbase-client/pkg/model"
)

// MemoryStore is an in-process Store. Entries live for the process
// lifetime until DeleteSession removes them.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
	}
}

// Name identifies the backend in metrics.
func (s *MemoryStore) Name() string { return "memory" }

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, session string, kind model.Kind) (model.Collection, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[cacheKey(session, kind)]
	if !ok {
		return nil, false, nil
	}
	return entry.Collection, true, nil
}

// Set implements Store. The collection is copied so later caller mutation
// cannot alias into the cached entry.
func (s *MemoryStore) Set(ctx context.Context, session string, kind model.Kind, collection model.Collection) error {
	stored := make(model.Collection, len(collection))
	copy(stored, collection)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[cacheKey(session, kind)] = Entry{
		Collection: stored,
		CreatedAt:  time.Now(),
	}
	return nil
}

// DeleteSession implements Store.
func (s *MemoryStore) DeleteSession(ctx context.Context, session string) error {
	prefix := session + ":"

	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	return nil
}
