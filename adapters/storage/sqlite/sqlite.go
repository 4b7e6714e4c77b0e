// Package sqlite provides the durable KeyValueStore. Every application
// instance opens its own handle onto the same database file, which is what
// makes the store's writes visible across instances.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lootvault/lootvault-go/domain/models"
	"github.com/lootvault/lootvault-go/internal"
)

// Store implements the KeyValueStore interface on a SQLite file
type Store struct {
	db *sql.DB
}

// New opens (and if necessary initializes) the store at path
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := initializeStore(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Initialize the kv table
func initializeStore(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create kv table: %w", err)
	}

	return nil
}

// Get retrieves the value for a key, or "" when the key is absent.
func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}

	return value, nil
}

// Set durably writes a single key.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %v: %w", key, err, models.ErrStorageUnavailable)
	}

	return nil
}

// SetMulti durably writes several keys inside one transaction; either every
// key is written or none is.
func (s *Store) SetMulti(values map[string]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin write: %v: %w", err, models.ErrStorageUnavailable)
	}

	for key, value := range values {
		if _, err := tx.Exec(
			`INSERT INTO kv (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to write key %q: %v: %w", key, err, models.ErrStorageUnavailable)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit write: %v: %w", err, models.ErrStorageUnavailable)
	}

	return nil
}

// Add atomically adds delta to the integer stored under key. The
// read-and-update runs inside one transaction, so concurrent instances cannot
// lose updates the way independent read-modify-write sequences can. A missing
// or corrupt value counts as 0; a negative result is rejected.
func (s *Store) Add(key string, delta int64) (int64, error) {
	return s.addInTx(key, delta, "", "")
}

// AddAndSet combines Add on addKey with a write of setKey in the same
// transaction; either both keys change or neither does.
func (s *Store) AddAndSet(addKey string, delta int64, setKey, setValue string) (int64, error) {
	return s.addInTx(addKey, delta, setKey, setValue)
}

func (s *Store) addInTx(addKey string, delta int64, setKey, setValue string) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin add: %v: %w", err, models.ErrStorageUnavailable)
	}
	defer tx.Rollback()

	current := int64(0)
	var raw string
	err = tx.QueryRow("SELECT value FROM kv WHERE key = ?", addKey).Scan(&raw)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to read key %q: %v: %w", addKey, err, models.ErrStorageUnavailable)
	}
	if err == nil && raw != "" {
		parsed, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			internal.GetLogger().Warn(internal.ComponentStorage,
				"Corrupt integer under key %q, treating as 0: %v", addKey, perr)
		} else {
			current = parsed
		}
	}

	next := current + delta
	if next < 0 {
		return current, fmt.Errorf("add %d to %q: %w", delta, addKey, models.ErrInsufficientFunds)
	}

	if _, err := tx.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		addKey, strconv.FormatInt(next, 10)); err != nil {
		return current, fmt.Errorf("failed to write key %q: %v: %w", addKey, err, models.ErrStorageUnavailable)
	}

	if setKey != "" {
		if _, err := tx.Exec(
			`INSERT INTO kv (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			setKey, setValue); err != nil {
			return current, fmt.Errorf("failed to write key %q: %v: %w", setKey, err, models.ErrStorageUnavailable)
		}
	}

	if err := tx.Commit(); err != nil {
		return current, fmt.Errorf("failed to commit add: %v: %w", err, models.ErrStorageUnavailable)
	}

	return next, nil
}

// Delete removes a key.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %q: %v: %w", key, err, models.ErrStorageUnavailable)
	}

	return nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
