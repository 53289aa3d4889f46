package repository

import (
	"context"

	"github.com/Marga-Ghale/projectflow/internal/store"
)

type SettingsRepository interface {
	Get(ctx context.Context) (AppSettings, error)
	Save(ctx context.Context, settings AppSettings) error
}

type settingsRepository struct {
	store store.Store
}

func NewSettingsRepository(s store.Store) SettingsRepository {
	return &settingsRepository{store: s}
}

func (r *settingsRepository) Get(ctx context.Context) (AppSettings, error) {
	return store.Load(ctx, r.store, store.KeyAppSettings, DefaultAppSettings())
}

func (r *settingsRepository) Save(ctx context.Context, settings AppSettings) error {
	return store.Save(ctx, r.store, store.KeyAppSettings, settings)
}
