package store

import (
	"sync"
)

// Memory keeps values in process memory. Nothing survives a restart.
type Memory struct {
	values map[string][]byte
	mu     sync.RWMutex
}

// NewMemory creates a new in-memory store
func NewMemory() *Memory {
	return &Memory{
		values: make(map[string][]byte),
	}
}

// Get retrieves a copy of the value stored under key
func (s *Memory) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, exists := s.values[key]
	if !exists {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put stores a copy of value
func (s *Memory) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes a key
func (s *Memory) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *Memory) Close() error {
	return nil
}
