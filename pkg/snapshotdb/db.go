// Package snapshotdb stores decoded P-state snapshots in SQLite so
// tuning sessions can be compared over time.
package snapshotdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// DB wraps the SQL database connection
type DB struct {
	conn *sql.DB
	path string
}

// Open creates or opens a SQLite database
func Open(path string) (*DB, error) {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{
		conn: conn,
		path: path,
	}

	if err := db.Migrate(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// Migrate creates or updates the database schema
func (db *DB) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		taken_at DATETIME NOT NULL,
		pstate INTEGER NOT NULL,
		core INTEGER NOT NULL DEFAULT 0,
		raw_value INTEGER NOT NULL,
		multiplier REAL NOT NULL,
		voltage REAL NOT NULL,
		bus_speed_mhz REAL NOT NULL,
		pll_frequency_mhz REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_taken_at ON snapshots(taken_at);
	CREATE INDEX IF NOT EXISTS idx_snapshots_pstate ON snapshots(pstate);
	`

	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
