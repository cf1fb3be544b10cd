// Package tracedb persists desugaring traces: input digest, description
// text, and rendered output. The CLI records into it with -trace-db so a
// corpus of descriptions can be diffed across engine versions.
package tracedb

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS desugarings (
	digest     TEXT PRIMARY KEY,
	input      TEXT NOT NULL,
	output     TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT (datetime('now'))
);`

// Store is a sqlite-backed trace store. Safe for concurrent use; sqlite
// serializes writers internally.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the trace database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open trace db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init trace db: %w", err)
	}
	return &Store{db: db}, nil
}

// Digest returns the hex digest keying a description input.
func Digest(input []byte) string {
	sum := sha256.Sum256(input)
	return hex.EncodeToString(sum[:])
}

// Record stores (or replaces) the trace for one input.
func (s *Store) Record(digest, input, output string) error {
	_, err := s.db.Exec(
		`INSERT INTO desugarings (digest, input, output) VALUES (?, ?, ?)
		 ON CONFLICT(digest) DO UPDATE SET input = excluded.input, output = excluded.output`,
		digest, input, output)
	if err != nil {
		return fmt.Errorf("record trace: %w", err)
	}
	return nil
}

// Lookup returns the recorded output for a digest, if any.
func (s *Store) Lookup(digest string) (string, bool, error) {
	var output string
	err := s.db.QueryRow(`SELECT output FROM desugarings WHERE digest = ?`, digest).Scan(&output)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup trace: %w", err)
	}
	return output, true, nil
}

// Count returns the number of recorded traces.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT count(*) FROM desugarings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count traces: %w", err)
	}
	return n, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
