package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileStore persists every key into a single JSON object on disk.
// Writes go to a temporary file which is then renamed over the original,
// so a crash mid-write leaves the previous contents intact.
type fileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a key-value store backed by the JSON file at path.
// The parent directory is created on first write.
func NewFileStore(path string) KeyValueStoreInterface {
	return &fileStore{path: path}
}

// Get retrieves the value for key
func (s *fileStore) Get(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.readAll()
	if err != nil {
		return "", err
	}

	value, ok := values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set stores value under key and rewrites the file. An undecodable file is
// moved aside to <path>.corrupt and replaced by a fresh one.
func (s *fileStore) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.readAll()
	if errors.Is(err, ErrCorruptStorage) {
		if err := s.quarantine(); err != nil {
			return err
		}
		values = make(map[string]string)
	} else if err != nil {
		return err
	}
	values[key] = value

	return s.writeAll(values)
}

// HealthCheck verifies the storage directory exists or can be created
func (s *fileStore) HealthCheck() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage directory unavailable: %w", err)
	}
	return nil
}

func (s *fileStore) readAll() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}

	values := make(map[string]string)
	if len(data) == 0 {
		return values, nil
	}

	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: failed to decode storage file: %w", ErrCorruptStorage, err)
	}
	return values, nil
}

func (s *fileStore) writeAll(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode storage file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}

func (s *fileStore) quarantine() error {
	if err := os.Rename(s.path, s.path+".corrupt"); err != nil {
		return fmt.Errorf("failed to move corrupt storage file aside: %w", err)
	}
	return nil
}
