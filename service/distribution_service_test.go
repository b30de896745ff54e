package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Rustaman254/waveUnit/events"
	"github.com/Rustaman254/waveUnit/models"
)

func TestDistributionService_RunDaily(t *testing.T) {
	ctx := context.Background()
	runDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockProfileRepo := new(MockProfileRepository)
	mockDistributionRepo := new(MockDistributionRepository)
	mockSettingsRepo := new(MockSettingsRepository)
	mockEventBus := new(MockEventPublisher)

	mockUoW.SetRepositories(mockProfileRepo, nil, nil, mockDistributionRepo, mockSettingsRepo, nil, nil, mockEventBus)

	service := NewDistributionService(mockFactory)

	starter := &models.Profile{
		ID:               uuid.New(),
		TotalInvestedKsh: decimal.NewFromInt(500),
		TotalShares:      decimal.RequireFromString("0.75"),
		KYCStatus:        models.KYCStatusApproved,
	}
	silver := &models.Profile{
		ID:               uuid.New(),
		TotalInvestedKsh: decimal.NewFromInt(6000),
		TotalShares:      decimal.NewFromInt(9),
		KYCStatus:        models.KYCStatusApproved,
	}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockDistributionRepo.On("GetRunByDate", ctx, runDate).Return(nil, nil)
	mockSettingsRepo.On("Get", ctx).Return(nil, nil)
	mockProfileRepo.On("GetInvestorsWithShares", ctx).Return([]*models.Profile{starter, silver}, nil)

	// 500 at 0.10%/day = 0.50; 6000 at 0.20%/day = 12.00
	mockDistributionRepo.On("CreateRun", ctx, mock.MatchedBy(func(run *models.DistributionRun) bool {
		return run.RunDate.Equal(runDate) &&
			run.TotalDistributedKsh.Equal(decimal.RequireFromString("12.50")) &&
			run.ProfilesPaid == 2
	})).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*models.DistributionRun).ID = 7
	})

	mockDistributionRepo.On("CreateDistribution", ctx, mock.MatchedBy(func(d *models.ProfitDistribution) bool {
		return d.RunID == 7 && d.ProfileID == starter.ID &&
			d.AmountKsh.Equal(decimal.RequireFromString("0.50")) &&
			d.Tier == models.TierStarter
	})).Return(nil)
	mockDistributionRepo.On("CreateDistribution", ctx, mock.MatchedBy(func(d *models.ProfitDistribution) bool {
		return d.RunID == 7 && d.ProfileID == silver.ID &&
			d.AmountKsh.Equal(decimal.RequireFromString("12.00")) &&
			d.Tier == models.TierSilver
	})).Return(nil)

	mockEventBus.On("Publish", mock.MatchedBy(func(e events.Event) bool {
		distributed, ok := e.(events.ProfitDistributedEvent)
		return ok && distributed.RunID == 7 && distributed.ProfilesPaid == 2
	})).Return()

	run, err := service.RunDaily(ctx, runDate)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), run.ID)
	assert.Equal(t, 2, run.ProfilesPaid)
	assert.True(t, run.TotalDistributedKsh.Equal(decimal.RequireFromString("12.50")))

	mockDistributionRepo.AssertExpectations(t)
	mockEventBus.AssertExpectations(t)
}

func TestDistributionService_RunDaily_IdempotentPerDate(t *testing.T) {
	ctx := context.Background()
	runDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockProfileRepo := new(MockProfileRepository)
	mockDistributionRepo := new(MockDistributionRepository)
	mockEventBus := new(MockEventPublisher)

	mockUoW.SetRepositories(mockProfileRepo, nil, nil, mockDistributionRepo, nil, nil, nil, mockEventBus)

	service := NewDistributionService(mockFactory)

	existing := &models.DistributionRun{
		ID:                  3,
		RunDate:             runDate,
		TotalDistributedKsh: decimal.NewFromInt(100),
		ProfilesPaid:        5,
	}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockDistributionRepo.On("GetRunByDate", ctx, runDate).Return(existing, nil)

	run, err := service.RunDaily(ctx, runDate)

	assert.NoError(t, err)
	assert.Equal(t, existing, run)

	mockDistributionRepo.AssertNotCalled(t, "CreateRun", mock.Anything, mock.Anything)
	mockDistributionRepo.AssertNotCalled(t, "CreateDistribution", mock.Anything, mock.Anything)
	mockProfileRepo.AssertNotCalled(t, "GetInvestorsWithShares", mock.Anything)
	mockEventBus.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestDistributionService_RunDaily_NormalizesDateToMidnightUTC(t *testing.T) {
	ctx := context.Background()
	// An afternoon timestamp must land on the same calendar date
	afternoon := time.Date(2025, 6, 15, 14, 30, 12, 0, time.UTC)
	midnight := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockDistributionRepo := new(MockDistributionRepository)

	mockUoW.SetRepositories(nil, nil, nil, mockDistributionRepo, nil, nil, nil, nil)

	service := NewDistributionService(mockFactory)

	existing := &models.DistributionRun{ID: 1, RunDate: midnight}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockDistributionRepo.On("GetRunByDate", ctx, midnight).Return(existing, nil)

	run, err := service.RunDaily(ctx, afternoon)

	assert.NoError(t, err)
	assert.Equal(t, existing, run)
	mockDistributionRepo.AssertExpectations(t)
}
