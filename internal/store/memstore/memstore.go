// Package memstore is an in-memory store.KV. Nothing survives the process.
package memstore

import (
	"context"
	"sync"

	"github.com/Makepad-fr/tada/internal/store"
)

// Store is a mutex-guarded map.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ store.KV = (*Store)(nil)

func New() *Store {
	return &Store{data: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Len returns the number of keys held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
