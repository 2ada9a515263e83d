package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// PreferenceStore is a file-backed implementation of
// usecase.PreferenceStore. Preferences are a flat string map stored
// as JSON; a missing file simply means no preference has been set.
type PreferenceStore struct {
	mu   sync.Mutex
	path string
}

// NewPreferenceStore creates a store backed by the given file path.
func NewPreferenceStore(path string) *PreferenceStore {
	return &PreferenceStore{path: path}
}

// Get returns the stored value and whether the key was present.
func (s *PreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.read()
	if err != nil {
		return "", false, err
	}

	value, ok := prefs[key]
	return value, ok, nil
}

// Set writes the value for key back to the file.
func (s *PreferenceStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.read()
	if err != nil {
		return err
	}

	prefs[key] = value

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preferences dir: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}

	return nil
}

func (s *PreferenceStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read preferences: %w", err)
	}

	prefs := map[string]string{}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("parse preferences: %w", err)
	}

	return prefs, nil
}
