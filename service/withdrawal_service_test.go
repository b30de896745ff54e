package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Rustaman254/waveUnit/models"
)

func setupWithdrawalMocks() (*MockUnitOfWork, *MockUnitOfWorkFactory, *MockProfileRepository, *MockInvestmentRepository, *MockWithdrawalRepository, *MockSettingsRepository, *MockEventPublisher) {
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockProfileRepo := new(MockProfileRepository)
	mockInvestmentRepo := new(MockInvestmentRepository)
	mockWithdrawalRepo := new(MockWithdrawalRepository)
	mockSettingsRepo := new(MockSettingsRepository)
	mockEventBus := new(MockEventPublisher)

	mockUoW.SetRepositories(mockProfileRepo, mockInvestmentRepo, mockWithdrawalRepo, nil, mockSettingsRepo, nil, nil, mockEventBus)

	return mockUoW, mockFactory, mockProfileRepo, mockInvestmentRepo, mockWithdrawalRepo, mockSettingsRepo, mockEventBus
}

func TestWithdrawalService_Request_Success(t *testing.T) {
	ctx := context.Background()

	mockUoW, mockFactory, mockProfileRepo, mockInvestmentRepo, mockWithdrawalRepo, mockSettingsRepo, mockEventBus := setupWithdrawalMocks()

	profile := approvedInvestor("0.0.1234")
	profile.TotalShares = decimal.NewFromInt(10)

	service := NewWithdrawalService(mockFactory)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockProfileRepo.On("GetByID", ctx, profile.ID).Return(profile, nil)
	// 2 of 10 shares still locked; 8 unlocked at 700 KSh = 5600 withdrawable
	mockInvestmentRepo.On("LockedShares", ctx, profile.ID, mock.AnythingOfType("time.Time")).Return(decimal.NewFromInt(2), nil)
	mockSettingsRepo.On("Get", ctx).Return(nil, nil)

	mockWithdrawalRepo.On("Create", ctx, mock.MatchedBy(func(w *models.Withdrawal) bool {
		return w.ProfileID == profile.ID &&
			w.AmountKsh.Equal(decimal.NewFromInt(5000)) &&
			w.Status == models.WithdrawalStatusPending &&
			w.Method == models.WithdrawalMethodMpesa
	})).Return(nil)
	mockEventBus.On("Publish", mock.Anything).Return()

	withdrawal, err := service.Request(ctx, profile.ID, decimal.NewFromInt(5000), models.WithdrawalMethodMpesa, "+254700000000")

	assert.NoError(t, err)
	assert.Equal(t, models.WithdrawalStatusPending, withdrawal.Status)

	mockWithdrawalRepo.AssertExpectations(t)
}

func TestWithdrawalService_Request_LockedSharesReduceBalance(t *testing.T) {
	ctx := context.Background()

	mockUoW, mockFactory, mockProfileRepo, mockInvestmentRepo, mockWithdrawalRepo, mockSettingsRepo, _ := setupWithdrawalMocks()

	profile := approvedInvestor("0.0.1234")
	profile.TotalShares = decimal.NewFromInt(10)

	service := NewWithdrawalService(mockFactory)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockProfileRepo.On("GetByID", ctx, profile.ID).Return(profile, nil)
	// All shares inside the lock period
	mockInvestmentRepo.On("LockedShares", ctx, profile.ID, mock.AnythingOfType("time.Time")).Return(decimal.NewFromInt(10), nil)
	mockSettingsRepo.On("Get", ctx).Return(nil, nil)

	_, err := service.Request(ctx, profile.ID, decimal.NewFromInt(100), models.WithdrawalMethodMpesa, "+254700000000")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds withdrawable balance")

	mockWithdrawalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWithdrawalService_Request_KYCNotApproved(t *testing.T) {
	ctx := context.Background()

	mockUoW, mockFactory, mockProfileRepo, _, mockWithdrawalRepo, _, _ := setupWithdrawalMocks()

	profile := approvedInvestor("0.0.1234")
	profile.KYCStatus = models.KYCStatusPending

	service := NewWithdrawalService(mockFactory)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockProfileRepo.On("GetByID", ctx, profile.ID).Return(profile, nil)

	_, err := service.Request(ctx, profile.ID, decimal.NewFromInt(100), models.WithdrawalMethodMpesa, "+254700000000")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "KYC")
	mockWithdrawalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWithdrawalService_Approve(t *testing.T) {
	ctx := context.Background()

	mockUoW, mockFactory, _, _, mockWithdrawalRepo, _, _ := setupWithdrawalMocks()

	service := NewWithdrawalService(mockFactory)

	pending := &models.Withdrawal{
		ID:        uuid.New(),
		ProfileID: uuid.New(),
		AmountKsh: decimal.NewFromInt(500),
		Status:    models.WithdrawalStatusPending,
		CreatedAt: time.Now(),
	}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockWithdrawalRepo.On("GetByID", ctx, pending.ID).Return(pending, nil)
	mockWithdrawalRepo.On("UpdateStatus", ctx, pending.ID, models.WithdrawalStatusCompleted, mock.MatchedBy(func(txID *string) bool {
		return txID != nil && *txID == "MPESA-REF-1"
	})).Return(nil)

	err := service.Approve(ctx, pending.ID, "MPESA-REF-1")

	assert.NoError(t, err)
	mockWithdrawalRepo.AssertExpectations(t)
}

func TestWithdrawalService_Resolve_RejectsNonPending(t *testing.T) {
	ctx := context.Background()

	mockUoW, mockFactory, _, _, mockWithdrawalRepo, _, _ := setupWithdrawalMocks()

	service := NewWithdrawalService(mockFactory)

	completed := &models.Withdrawal{
		ID:     uuid.New(),
		Status: models.WithdrawalStatusCompleted,
	}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockWithdrawalRepo.On("GetByID", ctx, completed.ID).Return(completed, nil)

	err := service.Reject(ctx, completed.ID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "only pending withdrawals")
	mockWithdrawalRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
