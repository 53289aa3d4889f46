// Package store persists the dashboard state as JSON values under string keys.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/Marga-Ghale/projectflow/internal/config"
	"github.com/Marga-Ghale/projectflow/internal/db"
)

// Persisted keys
const (
	KeyAuthUser        = "auth_user"
	KeyRegisteredUsers = "registered_users"
	KeyProjects        = "projects"
	KeyTasks           = "tasks"
	KeyCalendarEvents  = "calendar_events"
	KeyAppSettings     = "app_settings"
	KeyNotifications   = "notifications"
	KeyActivities      = "activities"
	KeySchemaVersion   = "schema_version"
)

// AllKeys lists every key the application writes.
var AllKeys = []string{
	KeyAuthUser, KeyRegisteredUsers, KeyProjects, KeyTasks, KeyCalendarEvents,
	KeyAppSettings, KeyNotifications, KeyActivities, KeySchemaVersion,
}

// SchemaVersion is the layout of the values written by this build.
const SchemaVersion = 1

var ErrSchemaTooNew = errors.New("stored schema is newer than this build")

// Store is a flat key-value namespace of JSON documents.
// Get reports found=false for an absent key and never writes.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// Load decodes the value at key, or returns def when the key is absent.
func Load[T any](ctx context.Context, s Store, key string, def T) (T, error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil {
		return def, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !found {
		return def, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return v, nil
}

// Save encodes v as JSON and writes it under key.
func Save[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// EnsureSchema stamps a fresh store with SchemaVersion and rejects a store
// written by a newer build.
func EnsureSchema(ctx context.Context, s Store) error {
	version, err := Load(ctx, s, KeySchemaVersion, 0)
	if err != nil {
		return err
	}

	switch {
	case version == 0:
		log.Printf("[Store] Stamping schema version %d", SchemaVersion)
		return Save(ctx, s, KeySchemaVersion, SchemaVersion)
	case version > SchemaVersion:
		return fmt.Errorf("%w: found %d, supports %d", ErrSchemaTooNew, version, SchemaVersion)
	}
	return nil
}

// Open connects the backend named by cfg.StoreBackend.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreBackend {
	case "memory":
		log.Println("[Store] Using in-memory backend")
		return NewMemoryStore(), nil

	case "sqlite", "":
		sqliteDB, err := db.NewSQLiteDB(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(sqliteDB), nil

	case "redis":
		redisDB, err := db.NewRedisDB(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(redisDB, cfg.RedisPrefix), nil

	case "postgres":
		if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
			return nil, err
		}
		pg, err := db.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(pg), nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
