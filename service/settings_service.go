package service

import (
	"context"
	"fmt"

	"github.com/Rustaman254/waveUnit/config"
	"github.com/Rustaman254/waveUnit/models"
)

type settingsService struct {
	uowFactory UnitOfWorkFactory
}

// NewSettingsService creates a new settings service
func NewSettingsService(uowFactory UnitOfWorkFactory) SettingsService {
	return &settingsService{
		uowFactory: uowFactory,
	}
}

// GetSettings returns the settings singleton. When no row has been saved
// yet it returns configuration defaults without persisting them.
func (s *settingsService) GetSettings(ctx context.Context) (*models.PlatformSettings, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	settings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if settings == nil {
		cfg := config.Get()
		settings = &models.PlatformSettings{
			ID:          1,
			HenPriceKsh: cfg.HenPriceKsh,
			TierRates:   models.DefaultTierRates(),
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, settings *models.PlatformSettings) (*models.PlatformSettings, error) {
	if !settings.HenPriceKsh.IsPositive() {
		return nil, fmt.Errorf("hen price must be positive")
	}
	for _, name := range []models.TierName{models.TierStarter, models.TierBronze, models.TierSilver, models.TierGold} {
		if settings.TierRates.Rate(name).IsNegative() {
			return nil, fmt.Errorf("%s tier rate cannot be negative", name)
		}
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	settings.ID = 1
	if err := uow.SettingsRepository().Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return settings, nil
}
