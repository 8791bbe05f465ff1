// Package prefs stores user interface preferences in a small JSON file so
// the dark mode choice survives restarts.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type preferences struct {
	DarkMode bool `json:"darkMode"`
}

// FileStore implements ports.PreferenceStore on top of a JSON file.
// A missing file means defaults: dark mode off.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the file at path. The file is
// created on the first SetDarkMode call.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DarkMode reports whether dark mode is enabled.
func (s *FileStore) DarkMode(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return false, err
	}
	return current.DarkMode, nil
}

// SetDarkMode persists the dark mode choice.
func (s *FileStore) SetDarkMode(_ context.Context, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return err
	}
	current.DarkMode = enabled

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	return nil
}

func (s *FileStore) load() (preferences, error) {
	var current preferences

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return current, nil
	}
	if err != nil {
		return current, fmt.Errorf("failed to read preferences file: %w", err)
	}

	if err := json.Unmarshal(data, &current); err != nil {
		return current, fmt.Errorf("failed to parse preferences file: %w", err)
	}
	return current, nil
}
