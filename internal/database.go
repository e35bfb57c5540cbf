package internal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS reflog_entries (
	repo_path    TEXT NOT NULL,
	hash         TEXT NOT NULL,
	raw          TEXT NOT NULL,
	commit_id    TEXT NOT NULL,
	timestamp    TEXT NOT NULL,
	message      TEXT NOT NULL,
	previous_ref TEXT NOT NULL,
	current_ref  TEXT NOT NULL,
	PRIMARY KEY (repo_path, hash)
)`

// OpenDatabase opens (creating if needed) the SQLite database holding
// persisted reflog state and ensures the schema exists.
func OpenDatabase(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}
