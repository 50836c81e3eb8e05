// Package prefs implements the persistent key/value preference stores.
package prefs

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/zerr"
)

// FileStore implements ports.PreferenceStore using a flat JSON file.
type FileStore struct {
	path  string
	mu    sync.RWMutex
	cache map[string]string
}

// NewFileStore creates a FileStore backed by the file at the given path.
// A missing file is an empty store.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:  filepath.Clean(path),
		cache: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and comes from configuration
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read preference file"), "path", s.path)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal preference file"), "path", s.path)
	}
	return nil
}

// flush must be called with mu held.
func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal preferences")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create preference directory"), "dir", dir)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary preference file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write preference file")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close preference file")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace preference file"), "path", s.path)
	}
	return nil
}

// Get returns the value stored under key.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.cache[key]
	return v, ok, nil
}

// Put stores value under key and writes the whole file. The in-memory value
// is rolled back when the write fails.
func (s *FileStore) Put(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.cache[key]
	s.cache[key] = value
	if err := s.flush(); err != nil {
		if had {
			s.cache[key] = prev
		} else {
			delete(s.cache, key)
		}
		return zerr.With(err, "key", key)
	}
	return nil
}

// Keys returns the stored keys.
func (s *FileStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.cache))
	for k := range s.cache {
		keys = append(keys, k)
	}
	return keys
}
