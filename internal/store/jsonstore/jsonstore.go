package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/idilsaglam/tada/internal/store"
)

// JSON-backed storage. Single file, human-readable, portable.
// The file is one object mapping keys to string values.

// DefaultFileName is used when no path is configured.
const DefaultFileName = "todos.json"

// Store keeps every key in one JSON file and rewrites it on each Put.
type Store struct {
	path string
	mu   sync.Mutex
}

// Open returns a Store backed by path. The file is created lazily on the
// first Put; its directory is created now.
func Open(path string) (*Store, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, DefaultFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &Store{path: path}, nil
}

// Path reports the backing file.
func (s *Store) Path() string { return s.path }

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return nil, err
	}
	v, ok := entries[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return []byte(v), nil
}

// Put replaces the value under key. A file that no longer parses is
// replaced rather than patched.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		entries = map[string]string{}
	}
	entries[key] = string(value)

	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return nil }

func (s *Store) read() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	entries := map[string]string{}
	if len(b) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return entries, nil
}

var _ store.Store = (*Store)(nil)
