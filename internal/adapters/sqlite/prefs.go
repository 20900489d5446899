// Package sqlite persists user preferences in a SQLite database.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pinacoteca/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Preferences implements ports.Preferences on a SQLite key-value table.
type Preferences struct {
	db     *sql.DB
	dbPath string
}

var _ ports.Preferences = (*Preferences)(nil)

// Open creates or opens the preference database at dbPath, creating parent
// directories as needed.
func Open(dbPath string) (*Preferences, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	// WAL so a CLI invocation and a running TUI can share the store.
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS prefs (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup preferences database: %w", err)
	}

	if _, err := db.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`,
		schemaVersion,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &Preferences{db: db, dbPath: dbPath}, nil
}

// DefaultPath returns the preference database location under the XDG data
// directory.
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "pinacoteca", "prefs.db")
}

// Get returns the stored value for key, or "" when the key is unset.
func (p *Preferences) Get(key string) (string, error) {
	var value string
	err := p.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (p *Preferences) Set(key, value string) error {
	_, err := p.db.Exec(
		`INSERT OR REPLACE INTO prefs (key, value) VALUES (?, ?)`, key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (p *Preferences) Delete(key string) error {
	if _, err := p.db.Exec(`DELETE FROM prefs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete preference %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (p *Preferences) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}
