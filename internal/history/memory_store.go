package history

import (
	"context"
	"sync"
)

// in-memory store, used when no Redis is configured
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]Entry),
	}
}

func (s *MemoryStore) Add(_ context.Context, owner string, entry Entry) error {
	if owner == "" {
		return ErrInvalidOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[owner] = prepend(s.entries[owner], prepare(entry))

	return nil
}

func (s *MemoryStore) List(_ context.Context, owner string) ([]Entry, error) {
	if owner == "" {
		return nil, ErrInvalidOwner
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.entries[owner]
	out := make([]Entry, len(entries))
	copy(out, entries)

	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context, owner string) error {
	if owner == "" {
		return ErrInvalidOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, owner)

	return nil
}
