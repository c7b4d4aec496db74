// ABOUTME: SQLite-backed audit journal using modernc.org/sqlite
// ABOUTME: Opens the database, enables WAL, and creates the audit_log schema

package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory journal database.
const MemoryPath = ":memory:"

// SQLiteJournal implements Journal using SQLite
type SQLiteJournal struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteJournal opens (or creates) the journal database at the given path.
// The schema is automatically created if it doesn't exist.
// Parent directories are created if needed.
func NewSQLiteJournal(path string) (*SQLiteJournal, error) {
	logger := slog.Default().With("component", "journal")

	if path != MemoryPath {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every pooled connection to :memory: would see its own empty database.
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	// Enable WAL mode for better concurrent performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	j := &SQLiteJournal{
		db:     db,
		logger: logger,
	}

	if err := j.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("SQLite journal initialized", "path", path)
	return j, nil
}

// createSchema creates the database tables if they don't exist
func (j *SQLiteJournal) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS audit_log (
			audit_id    TEXT PRIMARY KEY,
			action      TEXT NOT NULL,
			person_id   INTEGER NOT NULL,
			ts          TEXT NOT NULL,
			detail_json TEXT,

			CHECK (action IN ('create_person', 'update_person', 'delete_person'))
		);

		CREATE INDEX IF NOT EXISTS idx_audit_log_person ON audit_log(person_id);
		CREATE INDEX IF NOT EXISTS idx_audit_log_ts ON audit_log(ts);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Close releases the database handle.
func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
