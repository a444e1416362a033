// Package settings stores user preferences as string key/value pairs.
package settings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store is a file-backed settings store that notifies subscribers on change.
type Store struct {
	mu        sync.RWMutex
	path      string
	format    Format
	values    map[string]string
	listeners map[int]func()
	nextID    int
}

// Open loads settings from path. Missing files yield an empty store.
// An empty path keeps the store in memory only.
func Open(path string) (*Store, error) {
	s := &Store{
		path:      path,
		format:    FormatFor(path),
		values:    map[string]string{},
		listeners: map[int]func(){},
	}
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	values, err := decode(s.format, data)
	if err != nil {
		return nil, err
	}
	s.values = values
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Snapshot returns a copy of the current values.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return NewSnapshot(s.values)
}

// Set stores a single value, persists the file and notifies subscribers.
func (s *Store) Set(key, value string) error {
	return s.SetMany(map[string]string{key: value})
}

// SetMany stores several values as one change.
// An empty value deletes the key. Nothing changes and no subscriber runs when the file cannot be written.
func (s *Store) SetMany(values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	s.mu.Lock()
	next, changed := merge(s.values, values)
	if !changed {
		s.mu.Unlock()
		return nil
	}
	if err := s.write(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.values = next
	listeners := s.listenersLocked()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
	return nil
}

// merge returns a copy of current with updates applied and whether anything differs.
func merge(current, updates map[string]string) (map[string]string, bool) {
	next := make(map[string]string, len(current)+len(updates))
	for k, v := range current {
		next[k] = v
	}
	changed := false
	for k, v := range updates {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		old, exists := next[k]
		if v == "" {
			if exists {
				delete(next, k)
				changed = true
			}
			continue
		}
		if !exists || old != v {
			next[k] = v
			changed = true
		}
	}
	return next, changed
}

// OnChange registers fn to run after every change and returns a cancel func.
func (s *Store) OnChange(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// write persists values, creating parent directories as needed.
func (s *Store) write(values map[string]string) error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := encode(s.format, values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// listenersLocked copies the listener set.
func (s *Store) listenersLocked() []func() {
	out := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		out = append(out, fn)
	}
	return out
}
