package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type SQLiteDB struct {
	DB *sqlx.DB
}

// NewSQLiteDB opens (creating if needed) the database file at path and
// applies the embedded sqlite migrations. ":memory:" is accepted for tests.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
			}
		}
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// modernc serialises writers per connection; one is enough here
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}

	if err := RunSQLiteMigrations(conn.DB); err != nil {
		conn.Close()
		return nil, err
	}

	log.Printf("[SQLite] ✅ Opened %s", path)
	return &SQLiteDB{DB: conn}, nil
}

func (s *SQLiteDB) Close() error {
	if s.DB == nil {
		return nil
	}
	log.Println("[SQLite] Connection closed")
	return s.DB.Close()
}
