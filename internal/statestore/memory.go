package statestore

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
	writes  int
}

// NewMemory creates a concurrency-safe in-memory store useful for tests and
// for running the simulator without external services.
func NewMemory() Store {
	return &memoryStore{entries: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, address string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[address]
	return value, ok, nil
}

func (s *memoryStore) Set(_ context.Context, address, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[address] = value
	s.writes++
	return nil
}

func (s *memoryStore) Ping(context.Context) error {
	return nil
}
