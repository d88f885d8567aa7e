package prefs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// JSONStore persists preferences in a single JSON file on disk.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSON-backed preference store.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// DefaultStorePath returns the conventional per-user preferences file.
func DefaultStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ausum", "config.json"), nil
}

// Load reads preferences from disk. A missing, unreadable, or malformed
// file yields empty preferences, never an error: a broken config must
// not block a run, it just re-triggers the first-run prompt.
func (s *JSONStore) Load() (Preferences, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Preferences{}, nil
		}
		return Preferences{}, nil
	}

	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		return Preferences{}, nil
	}

	return p, nil
}

// Save writes preferences as indented JSON and creates parent directories.
func (s *JSONStore) Save(p Preferences) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o644)
}
