package cache

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore is a persistent cache tier backed by PostgreSQL, for
// deployments where several processes share one cache database. Writers
// to the same key are last-write-wins; there is no cross-process locking.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to the database and ensures the cache table
// exists.
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to cache database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging cache database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS cache_entries (
  key TEXT PRIMARY KEY,
  value BYTEA
)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Get returns the stored bytes for key.
func (s *PostgresStore) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM cache_entries WHERE key = $1", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set stores bytes under key, replacing any previous value.
func (s *PostgresStore) Set(key string, value []byte) error {
	_, err := s.db.Exec(`
	INSERT INTO cache_entries (key, value) VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE SET value = $2
	`, key, value)
	return err
}

// Delete removes key.
func (s *PostgresStore) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM cache_entries WHERE key = $1", key)
	return err
}

// Keys lists all keys under prefix.
func (s *PostgresStore) Keys(prefix string) ([]string, error) {
	rows, err := s.db.Query("SELECT key FROM cache_entries WHERE key LIKE $1 || '%'", prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close closes the underlying database.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
