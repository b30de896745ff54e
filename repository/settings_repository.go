package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Rustaman254/waveUnit/database"
	"github.com/Rustaman254/waveUnit/models"
)

// SettingsRepository implements the SettingsRepository interface.
// Platform settings are a single row keyed by id = 1.
type SettingsRepository struct {
	q queryable
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *database.DB) *SettingsRepository {
	return &SettingsRepository{q: db.Pool}
}

// newSettingsRepositoryWithTx creates a new settings repository with a transaction
func newSettingsRepositoryWithTx(tx queryable) *SettingsRepository {
	return &SettingsRepository{q: tx}
}

// Get returns the settings singleton, or nil if none has been saved
func (r *SettingsRepository) Get(ctx context.Context) (*models.PlatformSettings, error) {
	query := `
		SELECT id, hen_price_ksh, total_hens, daily_egg_production,
		       starter_rate, bronze_rate, silver_rate, gold_rate,
		       ksh_to_hbar_rate, hens_token_id, created_at, updated_at
		FROM platform_settings
		WHERE id = 1
	`

	var settings models.PlatformSettings
	err := r.q.QueryRow(ctx, query).Scan(
		&settings.ID,
		&settings.HenPriceKsh,
		&settings.TotalHens,
		&settings.DailyEggProduction,
		&settings.TierRates.Starter,
		&settings.TierRates.Bronze,
		&settings.TierRates.Silver,
		&settings.TierRates.Gold,
		&settings.KshToHbarRate,
		&settings.HensTokenID,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get platform settings: %w", err)
	}

	return &settings, nil
}

// Save upserts the settings singleton
func (r *SettingsRepository) Save(ctx context.Context, settings *models.PlatformSettings) error {
	query := `
		INSERT INTO platform_settings
			(id, hen_price_ksh, total_hens, daily_egg_production,
			 starter_rate, bronze_rate, silver_rate, gold_rate,
			 ksh_to_hbar_rate, hens_token_id)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			hen_price_ksh = EXCLUDED.hen_price_ksh,
			total_hens = EXCLUDED.total_hens,
			daily_egg_production = EXCLUDED.daily_egg_production,
			starter_rate = EXCLUDED.starter_rate,
			bronze_rate = EXCLUDED.bronze_rate,
			silver_rate = EXCLUDED.silver_rate,
			gold_rate = EXCLUDED.gold_rate,
			ksh_to_hbar_rate = EXCLUDED.ksh_to_hbar_rate,
			hens_token_id = EXCLUDED.hens_token_id,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.q.QueryRow(ctx, query,
		settings.HenPriceKsh,
		settings.TotalHens,
		settings.DailyEggProduction,
		settings.TierRates.Starter,
		settings.TierRates.Bronze,
		settings.TierRates.Silver,
		settings.TierRates.Gold,
		settings.KshToHbarRate,
		settings.HensTokenID,
	).Scan(&settings.ID, &settings.CreatedAt, &settings.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save platform settings: %w", err)
	}

	return nil
}
