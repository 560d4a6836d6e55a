package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

var _ Medium = (*SQLiteMedium)(nil)

// SQLiteMedium stores slots as rows of a single key/value table. The slot
// contract is the same as FileMedium's; the database file is just a sturdier
// medium for the same three JSON documents.
type SQLiteMedium struct {
	db *sql.DB
}

// NewSQLiteMedium opens (creating if needed) the database at path and
// ensures the slots table exists.
func NewSQLiteMedium(path string) (*SQLiteMedium, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("[NewSQLiteMedium] creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("[NewSQLiteMedium] opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("[NewSQLiteMedium] database ping failed: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS slots (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("[NewSQLiteMedium] creating slots table: %w", err)
	}

	return &SQLiteMedium{db: db}, nil
}

func (m *SQLiteMedium) Read(slot string) ([]byte, bool, error) {
	var value string
	err := m.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, slot).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("[SQLiteMedium Read] %w", err)
	}
	return []byte(value), true, nil
}

func (m *SQLiteMedium) Write(slot string, data []byte) error {
	_, err := m.db.Exec(
		`INSERT INTO slots (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		slot, string(data),
	)
	if err != nil {
		return fmt.Errorf("[SQLiteMedium Write] %w", err)
	}
	return nil
}

func (m *SQLiteMedium) Remove(slot string) error {
	if _, err := m.db.Exec(`DELETE FROM slots WHERE key = ?`, slot); err != nil {
		return fmt.Errorf("[SQLiteMedium Remove] %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (m *SQLiteMedium) Close() error {
	return m.db.Close()
}
