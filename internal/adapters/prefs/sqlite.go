package prefs

import (
	"database/sql"
	"errors"

	"go.trai.ch/zerr"

	// Registers the pure-Go "sqlite" driver.
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS preferences (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLStore implements ports.PreferenceStore on a SQLite database.
type SQLStore struct {
	db *sql.DB
}

// OpenSQLStore opens (or creates) the database at path. Use ":memory:" for
// a throwaway store.
func OpenSQLStore(path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open preference database"), "path", path)
	}
	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to create preference schema"), "path", path)
	}
	return &SQLStore{db: db}, nil
}

// Get returns the value stored under key.
func (s *SQLStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, zerr.With(zerr.Wrap(err, "failed to read preference"), "key", key)
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value.
func (s *SQLStore) Put(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write preference"), "key", key)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}
