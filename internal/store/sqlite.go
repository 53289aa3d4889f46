package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Marga-Ghale/projectflow/internal/db"
)

type sqliteStore struct {
	db *db.SQLiteDB
}

// NewSQLiteStore keeps values in the app_state table of a local sqlite file.
func NewSQLiteStore(sqliteDB *db.SQLiteDB) Store {
	return &sqliteStore{db: sqliteDB}
}

func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.DB.GetContext(ctx, &value, `SELECT value FROM app_state WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (s *sqliteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.DB.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value))
	return err
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.DB.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, key)
	return err
}

func (s *sqliteStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := s.db.DB.SelectContext(ctx, &keys, `SELECT key FROM app_state ORDER BY key`); err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
