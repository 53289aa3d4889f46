package service

import (
	"context"
	"fmt"

	"github.com/Marga-Ghale/projectflow/internal/repository"
	"github.com/Marga-Ghale/projectflow/internal/socket"
	"github.com/Marga-Ghale/projectflow/internal/types"
)

// ============================================
// Settings Service
// ============================================

type SettingsService interface {
	Get(ctx context.Context) (repository.AppSettings, error)
	Update(ctx context.Context, settings repository.AppSettings) (repository.AppSettings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	broadcaster  *socket.Broadcaster
}

func NewSettingsService(settingsRepo repository.SettingsRepository, broadcaster *socket.Broadcaster) SettingsService {
	return &settingsService{settingsRepo: settingsRepo, broadcaster: broadcaster}
}

func (s *settingsService) Get(ctx context.Context) (repository.AppSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return repository.AppSettings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// Update replaces the whole settings object.
func (s *settingsService) Update(ctx context.Context, settings repository.AppSettings) (repository.AppSettings, error) {
	if !types.IsValidTheme(settings.Appearance.Theme) {
		return repository.AppSettings{}, fmt.Errorf("%w: unknown theme %q", ErrInvalidInput, settings.Appearance.Theme)
	}
	if !types.IsValidLanguage(settings.Appearance.Language) {
		return repository.AppSettings{}, fmt.Errorf("%w: unsupported language %q", ErrInvalidInput, settings.Appearance.Language)
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return repository.AppSettings{}, fmt.Errorf("failed to save settings: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastSettingsUpdated(settings)
	}
	return settings, nil
}
