// Package memory provides an in-memory KeyValueStore used for tests and for
// running the core without a database file. A single Backing can hand out
// several Store handles; each handle behaves like an independent application
// instance sharing the same persistence layer.
package memory

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/lootvault/lootvault-go/domain/models"
	"github.com/lootvault/lootvault-go/internal"
)

// Backing is the shared substrate behind one or more Store handles.
type Backing struct {
	mu   sync.Mutex
	data map[string]string
}

// NewBacking creates an empty shared backing.
func NewBacking() *Backing {
	return &Backing{
		data: make(map[string]string),
	}
}

// OpenStore returns a new store handle over this backing.
func (b *Backing) OpenStore() *Store {
	return &Store{backing: b}
}

// Store is one instance's handle onto the shared backing.
type Store struct {
	backing *Backing
}

// New creates a store with a private backing.
func New() *Store {
	return NewBacking().OpenStore()
}

// Get retrieves the value for a key, or "" when the key is absent.
func (s *Store) Get(key string) (string, error) {
	s.backing.mu.Lock()
	defer s.backing.mu.Unlock()

	return s.backing.data[key], nil
}

// Set writes a single key.
func (s *Store) Set(key, value string) error {
	s.backing.mu.Lock()
	defer s.backing.mu.Unlock()

	s.backing.data[key] = value
	return nil
}

// SetMulti writes several keys as one atomic unit.
func (s *Store) SetMulti(values map[string]string) error {
	s.backing.mu.Lock()
	defer s.backing.mu.Unlock()

	for key, value := range values {
		s.backing.data[key] = value
	}
	return nil
}

// Add atomically adds delta to the integer stored under key. A missing or
// corrupt value counts as 0; a negative result is rejected and leaves the
// stored value unchanged.
func (s *Store) Add(key string, delta int64) (int64, error) {
	s.backing.mu.Lock()
	defer s.backing.mu.Unlock()

	current := s.readIntLocked(key)
	next := current + delta
	if next < 0 {
		return current, fmt.Errorf("add %d to %q: %w", delta, key, models.ErrInsufficientFunds)
	}

	s.backing.data[key] = strconv.FormatInt(next, 10)
	return next, nil
}

// readIntLocked parses the integer under key; the backing mutex must be held.
func (s *Store) readIntLocked(key string) int64 {
	raw, ok := s.backing.data[key]
	if !ok || raw == "" {
		return 0
	}

	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		internal.GetLogger().Warn(internal.ComponentStorage,
			"Corrupt integer under key %q, treating as 0: %v", key, err)
		return 0
	}
	return parsed
}

// AddAndSet combines Add on addKey with a write of setKey under one lock
// hold, so siblings never observe the add without the write or vice versa.
func (s *Store) AddAndSet(addKey string, delta int64, setKey, setValue string) (int64, error) {
	s.backing.mu.Lock()
	defer s.backing.mu.Unlock()

	current := s.readIntLocked(addKey)
	next := current + delta
	if next < 0 {
		return current, fmt.Errorf("add %d to %q: %w", delta, addKey, models.ErrInsufficientFunds)
	}

	s.backing.data[addKey] = strconv.FormatInt(next, 10)
	s.backing.data[setKey] = setValue
	return next, nil
}

// Delete removes a key.
func (s *Store) Delete(key string) error {
	s.backing.mu.Lock()
	defer s.backing.mu.Unlock()

	delete(s.backing.data, key)
	return nil
}

// Close releases the handle. The shared backing stays usable for siblings.
func (s *Store) Close() error {
	return nil
}
