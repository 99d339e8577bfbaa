package repositories

import (
	"errors"
	"sync"
)

var (
	ErrKeyNotFound    = errors.New("storage key not found")
	ErrEmptyKey       = errors.New("storage key cannot be empty")
	// ErrCorruptStorage means the backing storage exists but cannot be decoded
	ErrCorruptStorage = errors.New("storage is corrupt")
)

// memoryStore keeps values for the lifetime of the process
type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an in-memory key-value store
func NewMemoryStore() KeyValueStoreInterface {
	return &memoryStore{
		values: make(map[string]string),
	}
}

// Get retrieves the value for key
func (s *memoryStore) Get(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set stores value under key
func (s *memoryStore) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// HealthCheck always succeeds for the in-memory store
func (s *memoryStore) HealthCheck() error {
	return nil
}
