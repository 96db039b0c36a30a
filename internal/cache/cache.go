// Package cache provides a content-addressed store of already-translated
// output, backed by modernc.org/sqlite. It wraps a *sql.DB the way the
// teacher's SQL builtins wrap one (a thin struct holding the handle and
// driver name), scoped down to the single table this system needs.
//
// The cache is purely an optimization: pipeline.Translate is a pure
// function of its input text, so a cache hit and a cache miss must always
// return identical output. Nothing here is allowed to observe or affect
// translation semantics.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store wraps a translation cache backed by a single SQLite file.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS translations (
	source_hash TEXT PRIMARY KEY,
	output      TEXT NOT NULL,
	created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// Open creates or attaches to the cache database at path (use ":memory:"
// for an ephemeral, test-only store).
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Key returns the content address for a piece of source text.
func Key(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// ErrMiss is returned by Lookup when no cached translation exists for the key.
var ErrMiss = errors.New("cache: miss")

// Lookup returns the cached output for key, or ErrMiss if absent.
func (s *Store) Lookup(key string) (string, error) {
	var output string
	err := s.db.QueryRow(`SELECT output FROM translations WHERE source_hash = ?`, key).Scan(&output)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrMiss
	}
	if err != nil {
		return "", fmt.Errorf("cache: lookup: %w", err)
	}
	return output, nil
}

// Store records output under key, replacing any prior entry. It is only
// ever called after a fully successful translation (never on error), so
// a stored entry is always complete.
func (s *Store) Store(key, output string) error {
	_, err := s.db.Exec(
		`INSERT INTO translations (source_hash, output) VALUES (?, ?)
		 ON CONFLICT(source_hash) DO UPDATE SET output = excluded.output`,
		key, output,
	)
	if err != nil {
		return fmt.Errorf("cache: store: %w", err)
	}
	return nil
}

// Stats summarizes the cache contents for the "shenc cache stats" command.
type Stats struct {
	Entries int64
}

func (s *Store) Stats() (Stats, error) {
	var count int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM translations`).Scan(&count); err != nil {
		return Stats{}, fmt.Errorf("cache: stats: %w", err)
	}
	return Stats{Entries: count}, nil
}

// Clear removes every cached translation.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM translations`); err != nil {
		return fmt.Errorf("cache: clear: %w", err)
	}
	return nil
}
