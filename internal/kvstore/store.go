package kvstore

import (
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// store is a Store backed by the kv table.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new Store on db. The kv table must exist.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

func (s *store) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set upserts the value stored under key.
func (s *store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stmt, err := s.db.Prepare(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;
	`)
	if err != nil {
		log.Error("Failed to prepare statement for kv set", "error", err, "key", key)
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(key, value, time.Now().Unix())
	if err != nil {
		return err
	}
	log.Debug("Stored value", "key", key, "bytes", len(value))
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

// Keys lists the keys starting with prefix in lexical order.
func (s *store) Keys(prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT key FROM kv WHERE substr(key, 1, ?) = ? ORDER BY key", len(prefix), prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, rows.Err()
}
