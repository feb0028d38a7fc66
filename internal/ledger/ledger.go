// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger records completed stamp runs in a SQLite database so batch
// reruns skip inputs that have not changed since they were last stamped.
package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Ledger is the on-disk record of stamp runs.
type Ledger struct {
	db *sql.DB
}

// Open opens or creates the ledger database at path, creating the schema if
// it does not exist.
func Open(path string) (*Ledger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}
	return l, nil
}

// Close releases the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) createSchema() error {
	_, err := l.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		input TEXT PRIMARY KEY,
		file_mod_time TEXT NOT NULL,
		output TEXT NOT NULL,
		modes TEXT NOT NULL,
		stamped_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Seen reports whether input was already stamped with the same modification
// time.
func (l *Ledger) Seen(input, modTime string) (bool, error) {
	var stored string
	err := l.db.QueryRow(
		`SELECT file_mod_time FROM runs WHERE input = ?`, input,
	).Scan(&stored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying ledger: %w", err)
	}
	return stored == modTime, nil
}

// Record upserts the run for input, replacing any earlier record.
func (l *Ledger) Record(input, modTime, output, modes string) error {
	_, err := l.db.Exec(
		`INSERT INTO runs (input, file_mod_time, output, modes, stamped_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(input) DO UPDATE SET
			file_mod_time=excluded.file_mod_time, output=excluded.output,
			modes=excluded.modes, stamped_at=excluded.stamped_at`,
		input, modTime, output, modes, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording run for %s: %w", input, err)
	}
	return nil
}

// ModTime formats a file modification time the way the ledger stores it.
func ModTime(info os.FileInfo) string {
	return info.ModTime().UTC().Format(time.RFC3339Nano)
}
