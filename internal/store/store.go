// Package store persists learner state in a single-file SQLite
// database: progress records, the streak ledger, settings, and the
// vocabulary lists. Each concern is exposed as a small repository.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the database handle and hands out repositories.
type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at dsn, applies the recommended
// pragmas, and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ProgressRepo returns the progress and streak repository.
func (s *Store) ProgressRepo() *ProgressRepo {
	return &ProgressRepo{db: s.db}
}

// VocabRepo returns the vocabulary list repository.
func (s *Store) VocabRepo() *VocabRepo {
	return &VocabRepo{db: s.db}
}

// SettingsRepo returns the settings repository.
func (s *Store) SettingsRepo() *SettingsRepo {
	return &SettingsRepo{db: s.db}
}

// Reset drops all learner data, keeping the schema.
func (s *Store) Reset() error {
	for _, table := range []string{"progress", "streak", "app_settings", "custom_words", "master_words"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS progress (
			id TEXT PRIMARY KEY,
			mastery INTEGER NOT NULL,
			last_seen INTEGER NOT NULL,
			next_review INTEGER NOT NULL,
			interval REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS streak (
			date TEXT PRIMARY KEY,
			count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS app_settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			input_mode TEXT NOT NULL,
			language TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS master_words (
			id TEXT PRIMARY KEY,
			korean TEXT NOT NULL,
			meaning TEXT NOT NULL,
			meaning_en TEXT NOT NULL,
			romanization TEXT NOT NULL DEFAULT '',
			example TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '',
			frequency INTEGER NOT NULL,
			pos TEXT NOT NULL,
			level TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS custom_words (
			id TEXT PRIMARY KEY,
			korean TEXT NOT NULL,
			meaning TEXT NOT NULL,
			meaning_en TEXT NOT NULL,
			romanization TEXT NOT NULL DEFAULT '',
			example TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '',
			frequency INTEGER NOT NULL,
			pos TEXT NOT NULL,
			level TEXT NOT NULL,
			added_at INTEGER NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. HANA_DB environment variable
// 2. $XDG_DATA_HOME/hana/hana.db
// 3. ~/.local/share/hana/hana.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("HANA_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "hana", "hana.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
