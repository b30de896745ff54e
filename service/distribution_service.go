package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/Rustaman254/waveUnit/events"
	"github.com/Rustaman254/waveUnit/models"
)

type distributionService struct {
	uowFactory UnitOfWorkFactory
}

// NewDistributionService creates a new distribution service
func NewDistributionService(uowFactory UnitOfWorkFactory) DistributionService {
	return &distributionService{
		uowFactory: uowFactory,
	}
}

// RunDaily computes and records the profit distribution for a calendar
// date. Each approved investor holding shares earns their tier's daily
// rate on their cumulative invested amount. The run is idempotent per
// date: a second call for the same date returns the recorded run.
func (s *distributionService) RunDaily(ctx context.Context, date time.Time) (*models.DistributionRun, error) {
	runDate := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	existing, err := uow.DistributionRepository().GetRunByDate(ctx, runDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing run: %w", err)
	}
	if existing != nil {
		log.WithFields(log.Fields{
			"runDate": runDate.Format("2006-01-02"),
			"runID":   existing.ID,
		}).Info("Distribution already recorded for date")
		return existing, nil
	}

	rates := models.DefaultTierRates()
	settings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get platform settings: %w", err)
	}
	if settings != nil {
		rates = settings.TierRates
	}

	investors, err := uow.ProfileRepository().GetInvestorsWithShares(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get investors: %w", err)
	}

	type payout struct {
		profile *models.Profile
		tier    models.Tier
		amount  decimal.Decimal
	}

	var payouts []payout
	total := decimal.Zero
	hundred := decimal.NewFromInt(100)

	for _, investor := range investors {
		tier := ClassifyTier(investor.TotalInvestedKsh, rates)
		amount := investor.TotalInvestedKsh.Mul(tier.DailyRatePercent).DivRound(hundred, 2)
		if !amount.IsPositive() {
			continue
		}
		payouts = append(payouts, payout{profile: investor, tier: tier, amount: amount})
		total = total.Add(amount)
	}

	run := &models.DistributionRun{
		RunDate:             runDate,
		TotalDistributedKsh: total,
		ProfilesPaid:        len(payouts),
		ExecutionSummary: map[string]interface{}{
			"investors_considered": len(investors),
			"profiles_paid":        len(payouts),
			"total_ksh":            total.String(),
		},
	}

	if err := uow.DistributionRepository().CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to create distribution run: %w", err)
	}

	now := time.Now().UTC()
	for _, p := range payouts {
		distribution := &models.ProfitDistribution{
			RunID:                run.ID,
			ProfileID:            p.profile.ID,
			AmountKsh:            p.amount,
			SharesAtDistribution: p.profile.TotalShares,
			Tier:                 p.tier.Name,
			DailyRate:            p.tier.DailyRatePercent,
			DistributedAt:        now,
		}
		if err := uow.DistributionRepository().CreateDistribution(ctx, distribution); err != nil {
			return nil, fmt.Errorf("failed to create distribution for profile %s: %w", p.profile.ID, err)
		}
	}

	uow.EventBus().Publish(events.ProfitDistributedEvent{
		RunID:               run.ID,
		TotalDistributedKsh: total,
		ProfilesPaid:        len(payouts),
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"runDate":      runDate.Format("2006-01-02"),
		"runID":        run.ID,
		"profilesPaid": len(payouts),
		"totalKsh":     total,
	}).Info("Daily profit distribution completed")

	return run, nil
}

func (s *distributionService) History(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.ProfitDistribution, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	distributions, err := uow.DistributionRepository().GetByProfile(ctx, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get distributions: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return distributions, nil
}
