package jsonstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// JSON-backed storage. One file per store key, human-readable, portable.
// No locking; fine for a local single-user CLI.

// Store reads and writes <key>.json documents inside a data directory.
type Store struct {
	dir string
}

// DefaultDir is ~/.secretaria.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".secretaria"), nil
}

// Open ensures the data directory exists (owner-only) and returns a Store.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) Load(key string) ([]byte, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return b, nil
}

func (s *Store) Save(key string, data []byte) error {
	if err := os.WriteFile(s.path(key), data, 0o600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
