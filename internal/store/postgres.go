package store

import (
	"context"
	"errors"

	"github.com/Marga-Ghale/projectflow/internal/db"
	"github.com/jackc/pgx/v5"
)

type postgresStore struct {
	db *db.PostgresDB
}

// NewPostgresStore keeps values as JSONB rows of the app_state table.
func NewPostgresStore(pg *db.PostgresDB) Store {
	return &postgresStore{db: pg}
}

func (p *postgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := p.db.Pool.QueryRow(ctx, `SELECT value::text FROM app_state WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (p *postgresStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := p.db.Pool.Exec(ctx, `
		INSERT INTO app_state (key, value, updated_at) VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, string(value))
	return err
}

func (p *postgresStore) Delete(ctx context.Context, key string) error {
	_, err := p.db.Pool.Exec(ctx, `DELETE FROM app_state WHERE key = $1`, key)
	return err
}

func (p *postgresStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := p.db.Pool.Query(ctx, `SELECT key FROM app_state ORDER BY key`)
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

func (p *postgresStore) Close() error {
	return p.db.Close()
}
