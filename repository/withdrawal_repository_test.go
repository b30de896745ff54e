package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rustaman254/waveUnit/models"
	"github.com/Rustaman254/waveUnit/repository/testutil"
)

func TestWithdrawalRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	profileRepo := NewProfileRepository(testDB.DB)
	repo := NewWithdrawalRepository(testDB.DB)
	ctx := context.Background()

	profile := testutil.CreateTestProfile("withdrawer")
	require.NoError(t, profileRepo.Create(ctx, profile))

	t.Run("not found returns nil", func(t *testing.T) {
		withdrawal, err := repo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, withdrawal)
	})

	t.Run("create and retrieve", func(t *testing.T) {
		withdrawal := testutil.CreateTestWithdrawal(profile.ID, 1000)
		require.NoError(t, repo.Create(ctx, withdrawal))
		assert.NotEqual(t, uuid.Nil, withdrawal.ID)

		found, err := repo.GetByID(ctx, withdrawal.ID)
		require.NoError(t, err)
		require.NotNil(t, found)

		assert.Equal(t, profile.ID, found.ProfileID)
		assert.True(t, found.AmountKsh.Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, models.WithdrawalStatusPending, found.Status)
		assert.Nil(t, found.TransactionID)
		assert.Nil(t, found.ProcessedAt)
	})
}

func TestWithdrawalRepository_UpdateStatus(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	profileRepo := NewProfileRepository(testDB.DB)
	repo := NewWithdrawalRepository(testDB.DB)
	ctx := context.Background()

	profile := testutil.CreateTestProfile("withdrawer")
	require.NoError(t, profileRepo.Create(ctx, profile))

	t.Run("completion stamps processed_at and reference", func(t *testing.T) {
		withdrawal := testutil.CreateTestWithdrawal(profile.ID, 500)
		require.NoError(t, repo.Create(ctx, withdrawal))

		txID := "MPESA-REF-9"
		require.NoError(t, repo.UpdateStatus(ctx, withdrawal.ID, models.WithdrawalStatusCompleted, &txID))

		found, err := repo.GetByID(ctx, withdrawal.ID)
		require.NoError(t, err)
		assert.Equal(t, models.WithdrawalStatusCompleted, found.Status)
		require.NotNil(t, found.TransactionID)
		assert.Equal(t, "MPESA-REF-9", *found.TransactionID)
		assert.NotNil(t, found.ProcessedAt)
	})

	t.Run("moving to processing leaves processed_at empty", func(t *testing.T) {
		withdrawal := testutil.CreateTestWithdrawal(profile.ID, 500)
		require.NoError(t, repo.Create(ctx, withdrawal))

		require.NoError(t, repo.UpdateStatus(ctx, withdrawal.ID, models.WithdrawalStatusProcessing, nil))

		found, err := repo.GetByID(ctx, withdrawal.ID)
		require.NoError(t, err)
		assert.Equal(t, models.WithdrawalStatusProcessing, found.Status)
		assert.Nil(t, found.ProcessedAt)
	})
}

func TestWithdrawalRepository_GetAllWithStatusFilter(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	profileRepo := NewProfileRepository(testDB.DB)
	repo := NewWithdrawalRepository(testDB.DB)
	ctx := context.Background()

	profile := testutil.CreateTestProfile("withdrawer")
	require.NoError(t, profileRepo.Create(ctx, profile))

	pending := testutil.CreateTestWithdrawal(profile.ID, 100)
	require.NoError(t, repo.Create(ctx, pending))

	resolved := testutil.CreateTestWithdrawal(profile.ID, 200)
	require.NoError(t, repo.Create(ctx, resolved))
	require.NoError(t, repo.UpdateStatus(ctx, resolved.ID, models.WithdrawalStatusFailed, nil))

	all, err := repo.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	status := models.WithdrawalStatusPending
	onlyPending, err := repo.GetAll(ctx, &status)
	require.NoError(t, err)
	require.Len(t, onlyPending, 1)
	assert.Equal(t, pending.ID, onlyPending[0].ID)
}
