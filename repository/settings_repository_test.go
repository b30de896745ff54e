package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rustaman254/waveUnit/models"
	"github.com/Rustaman254/waveUnit/repository/testutil"
)

func TestSettingsRepository_GetAndSave(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewSettingsRepository(testDB.DB)
	ctx := context.Background()

	t.Run("empty table returns nil", func(t *testing.T) {
		settings, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Nil(t, settings)
	})

	t.Run("save then get", func(t *testing.T) {
		tokenID := "0.0.5555"
		settings := &models.PlatformSettings{
			HenPriceKsh:        decimal.NewFromInt(700),
			TotalHens:          120,
			DailyEggProduction: 95,
			TierRates:          models.DefaultTierRates(),
			KshToHbarRate:      decimal.NewFromInt(45),
			HensTokenID:        &tokenID,
		}
		require.NoError(t, repo.Save(ctx, settings))
		assert.Equal(t, 1, settings.ID)

		found, err := repo.Get(ctx)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, found.HenPriceKsh.Equal(decimal.NewFromInt(700)))
		assert.Equal(t, 120, found.TotalHens)
		assert.True(t, found.TierRates.Bronze.Equal(decimal.RequireFromString("0.15")))
		require.NotNil(t, found.HensTokenID)
		assert.Equal(t, tokenID, *found.HensTokenID)
	})

	t.Run("save again replaces the singleton", func(t *testing.T) {
		settings := &models.PlatformSettings{
			HenPriceKsh: decimal.NewFromInt(750),
			TierRates: models.TierRates{
				Starter: decimal.RequireFromString("0.12"),
				Bronze:  decimal.RequireFromString("0.16"),
				Silver:  decimal.RequireFromString("0.21"),
				Gold:    decimal.RequireFromString("0.26"),
			},
		}
		require.NoError(t, repo.Save(ctx, settings))

		found, err := repo.Get(ctx)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, 1, found.ID)
		assert.True(t, found.HenPriceKsh.Equal(decimal.NewFromInt(750)))
		assert.True(t, found.TierRates.Gold.Equal(decimal.RequireFromString("0.26")))
	})
}
