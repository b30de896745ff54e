package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rustaman254/waveUnit/models"
	"github.com/Rustaman254/waveUnit/repository/testutil"
)

func TestDistributionRepository_GetRunByDate(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDistributionRepository(testDB.DB)
	ctx := context.Background()

	testDate := time.Date(2025, 1, 15, 12, 30, 45, 0, time.UTC)

	t.Run("no run found", func(t *testing.T) {
		run, err := repo.GetRunByDate(ctx, testDate)
		require.NoError(t, err)
		assert.Nil(t, run)
	})

	t.Run("run found with normalized date", func(t *testing.T) {
		original := testutil.CreateTestDistributionRun(testDate)
		require.NoError(t, repo.CreateRun(ctx, original))
		assert.NotZero(t, original.ID)

		// Query with a different time on the same date
		queryDate := time.Date(2025, 1, 15, 9, 45, 15, 0, time.UTC)
		run, err := repo.GetRunByDate(ctx, queryDate)
		require.NoError(t, err)
		require.NotNil(t, run)

		assert.True(t, run.TotalDistributedKsh.Equal(original.TotalDistributedKsh))
		assert.Equal(t, original.ProfilesPaid, run.ProfilesPaid)
		assert.NotNil(t, run.ExecutionSummary)

		expectedDate := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, expectedDate, run.RunDate.UTC())
	})

	t.Run("duplicate date rejected", func(t *testing.T) {
		dup := testutil.CreateTestDistributionRun(testDate)
		err := repo.CreateRun(ctx, dup)
		assert.Error(t, err)
	})
}

func TestDistributionRepository_GetLatestRun(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDistributionRepository(testDB.DB)
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		run, err := repo.GetLatestRun(ctx)
		require.NoError(t, err)
		assert.Nil(t, run)
	})

	t.Run("returns most recent date", func(t *testing.T) {
		older := testutil.CreateTestDistributionRun(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, repo.CreateRun(ctx, older))

		newer := testutil.CreateTestDistributionRun(time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC))
		require.NoError(t, repo.CreateRun(ctx, newer))

		latest, err := repo.GetLatestRun(ctx)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, newer.ID, latest.ID)
	})
}

func TestDistributionRepository_Distributions(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	profileRepo := NewProfileRepository(testDB.DB)
	repo := NewDistributionRepository(testDB.DB)
	ctx := context.Background()

	profile := testutil.CreateTestProfile("earner")
	require.NoError(t, profileRepo.Create(ctx, profile))

	run := testutil.CreateTestDistributionRun(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.CreateRun(ctx, run))

	distribution := &models.ProfitDistribution{
		RunID:                run.ID,
		ProfileID:            profile.ID,
		AmountKsh:            decimal.RequireFromString("12.50"),
		SharesAtDistribution: decimal.RequireFromString("0.75"),
		Tier:                 models.TierStarter,
		DailyRate:            decimal.RequireFromString("0.10"),
		DistributedAt:        time.Now().UTC(),
	}
	require.NoError(t, repo.CreateDistribution(ctx, distribution))
	assert.NotZero(t, distribution.ID)

	history, err := repo.GetByProfile(ctx, profile.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)

	assert.Equal(t, run.ID, history[0].RunID)
	assert.True(t, history[0].AmountKsh.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, models.TierStarter, history[0].Tier)
	assert.True(t, history[0].DailyRate.Equal(decimal.RequireFromString("0.10")))
}
