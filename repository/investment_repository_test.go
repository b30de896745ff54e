package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rustaman254/waveUnit/models"
	"github.com/Rustaman254/waveUnit/repository/testutil"
)

func TestInvestmentRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	profileRepo := NewProfileRepository(testDB.DB)
	repo := NewInvestmentRepository(testDB.DB)
	ctx := context.Background()

	profile := testutil.CreateTestProfile("investor")
	require.NoError(t, profileRepo.Create(ctx, profile))

	t.Run("not found returns nil", func(t *testing.T) {
		investment, err := repo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, investment)
	})

	t.Run("create and retrieve", func(t *testing.T) {
		investment := testutil.CreateTestInvestment(profile.ID, 500)
		err := repo.Create(ctx, investment)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, investment.ID)
		assert.False(t, investment.CreatedAt.IsZero())

		found, err := repo.GetByID(ctx, investment.ID)
		require.NoError(t, err)
		require.NotNil(t, found)

		assert.Equal(t, profile.ID, found.ProfileID)
		assert.True(t, found.AmountKsh.Equal(decimal.NewFromInt(500)))
		assert.True(t, found.TotalShares.Equal(found.BaseShares.Add(found.BonusShares)))
		assert.Equal(t, models.InvestmentStatusCompleted, found.Status)
		assert.Equal(t, models.PaymentMethodHbar, found.PaymentMethod)
		require.NotNil(t, found.PaymentTxID)
		require.NotNil(t, found.MintTxID)
	})
}

func TestInvestmentRepository_GetByProfile(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	profileRepo := NewProfileRepository(testDB.DB)
	repo := NewInvestmentRepository(testDB.DB)
	ctx := context.Background()

	profile := testutil.CreateTestProfile("investor")
	require.NoError(t, profileRepo.Create(ctx, profile))

	other := testutil.CreateTestProfile("other")
	require.NoError(t, profileRepo.Create(ctx, other))

	for _, amount := range []int64{100, 200, 300} {
		require.NoError(t, repo.Create(ctx, testutil.CreateTestInvestment(profile.ID, amount)))
	}
	require.NoError(t, repo.Create(ctx, testutil.CreateTestInvestment(other.ID, 999)))

	investments, err := repo.GetByProfile(ctx, profile.ID, 10)
	require.NoError(t, err)
	require.Len(t, investments, 3)
	for _, inv := range investments {
		assert.Equal(t, profile.ID, inv.ProfileID)
	}

	limited, err := repo.GetByProfile(ctx, profile.ID, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestInvestmentRepository_LockedShares(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	profileRepo := NewProfileRepository(testDB.DB)
	repo := NewInvestmentRepository(testDB.DB)
	ctx := context.Background()

	profile := testutil.CreateTestProfile("investor")
	require.NoError(t, profileRepo.Create(ctx, profile))

	now := time.Now().UTC()

	// Still locked for another two days
	locked := testutil.CreateTestInvestment(profile.ID, 700)
	locked.LockedUntil = now.Add(48 * time.Hour)
	require.NoError(t, repo.Create(ctx, locked))

	// Lock period already elapsed
	unlocked := testutil.CreateTestInvestment(profile.ID, 1400)
	unlocked.LockedUntil = now.Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, unlocked))

	lockedShares, err := repo.LockedShares(ctx, profile.ID, now)
	require.NoError(t, err)
	assert.True(t, lockedShares.Equal(locked.TotalShares),
		"locked %s, want %s", lockedShares, locked.TotalShares)

	// With no investments inside the lock window the sum is zero
	later, err := repo.LockedShares(ctx, profile.ID, now.Add(72*time.Hour))
	require.NoError(t, err)
	assert.True(t, later.IsZero())
}

func TestInvestmentRepository_GetAllWithStatusFilter(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	profileRepo := NewProfileRepository(testDB.DB)
	repo := NewInvestmentRepository(testDB.DB)
	ctx := context.Background()

	profile := testutil.CreateTestProfile("investor")
	require.NoError(t, profileRepo.Create(ctx, profile))

	completed := testutil.CreateTestInvestment(profile.ID, 500)
	require.NoError(t, repo.Create(ctx, completed))

	failed := testutil.CreateTestInvestment(profile.ID, 300)
	failed.Status = models.InvestmentStatusFailed
	require.NoError(t, repo.Create(ctx, failed))

	all, err := repo.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	status := models.InvestmentStatusCompleted
	onlyCompleted, err := repo.GetAll(ctx, &status)
	require.NoError(t, err)
	require.Len(t, onlyCompleted, 1)
	assert.Equal(t, completed.ID, onlyCompleted[0].ID)
}
