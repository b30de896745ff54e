package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/Rustaman254/waveUnit/config"
	"github.com/Rustaman254/waveUnit/events"
	"github.com/Rustaman254/waveUnit/ledger"
	"github.com/Rustaman254/waveUnit/models"
)

type investmentService struct {
	uowFactory UnitOfWorkFactory
	ledger     ledger.Client
	rates      RateSource
}

// NewInvestmentService creates a new investment service
func NewInvestmentService(uowFactory UnitOfWorkFactory, ledgerClient ledger.Client, rates RateSource) InvestmentService {
	return &investmentService{
		uowFactory: uowFactory,
		ledger:     ledgerClient,
		rates:      rates,
	}
}

// Invest runs one settlement sequence: validate, pay HBAR to the treasury,
// mint shares to the investor's wallet, then record everything in a single
// database transaction. The sequence is strictly ordered and never
// compensates: a failure after the payment confirmed leaves the payment
// final on chain with no investment recorded, and the result reports
// exactly which step failed.
func (s *investmentService) Invest(ctx context.Context, profileID uuid.UUID, amountKsh decimal.Decimal) (*models.SettlementResult, error) {
	cfg := config.Get()
	result := &models.SettlementResult{State: models.SettlementInitiated}

	if amountKsh.LessThan(cfg.MinInvestmentKsh) {
		result.State = models.SettlementAborted
		result.FailedState = models.SettlementInitiated
		return result, fmt.Errorf("minimum investment is %s KSh", cfg.MinInvestmentKsh.StringFixed(2))
	}

	profile, henPriceKsh, err := s.loadInvestor(ctx, profileID)
	if err != nil {
		result.State = models.SettlementAborted
		result.FailedState = models.SettlementInitiated
		return result, err
	}

	operator := s.ledger.OperatorAccount()
	if *profile.HederaAccountID != operator {
		result.State = models.SettlementAborted
		result.FailedState = models.SettlementInitiated
		return result, fmt.Errorf("linked wallet %s does not match signing account %s", *profile.HederaAccountID, operator)
	}

	rate := s.rates.FetchRate(ctx)
	hbarAmount := amountKsh.DivRound(rate, 8)
	shares := ComputeShares(amountKsh, henPriceKsh, cfg.BonusRate)

	result.Rate = rate
	result.HbarPaid = hbarAmount
	result.Shares = shares

	log.WithFields(log.Fields{
		"profileID":   profileID,
		"amountKsh":   amountKsh,
		"hbarAmount":  hbarAmount,
		"rate":        rate,
		"totalShares": shares.Total,
	}).Info("Starting investment settlement")

	// Step 1: payment. HBAR moves from the investor's wallet to the
	// platform treasury and is final once confirmed.
	result.State = models.SettlementPaying
	paymentTxID, err := s.ledger.TransferHbar(ctx, cfg.TreasuryAccount, hbarAmount)
	if err != nil {
		result.State = models.SettlementAborted
		result.FailedState = models.SettlementPaying
		return result, fmt.Errorf("failed to transfer payment: %w", err)
	}
	result.PaymentTxID = paymentTxID

	// Step 2: mint. If this fails the payment above is NOT reversed; the
	// result keeps the payment reference so the loss is observable.
	result.State = models.SettlementMinting
	mintTxID, err := s.ledger.MintShares(ctx, *profile.HederaAccountID, shares.Total)
	if err != nil {
		result.State = models.SettlementAborted
		result.FailedState = models.SettlementMinting
		log.WithFields(log.Fields{
			"profileID":   profileID,
			"paymentTxID": paymentTxID,
			"error":       err,
		}).Error("Share mint failed after confirmed payment; no investment recorded")
		return result, fmt.Errorf("failed to mint shares: %w", err)
	}
	result.MintTxID = mintTxID

	// Step 3: record. The investment row and the profile totals move
	// together or not at all.
	result.State = models.SettlementRecording
	investment, err := s.record(ctx, profile, amountKsh, shares, paymentTxID, mintTxID, cfg.LockDays)
	if err != nil {
		result.State = models.SettlementAborted
		result.FailedState = models.SettlementRecording
		log.WithFields(log.Fields{
			"profileID":   profileID,
			"paymentTxID": paymentTxID,
			"mintTxID":    mintTxID,
			"error":       err,
		}).Error("Failed to record settled investment; on-chain effects are final")
		return result, fmt.Errorf("failed to record investment: %w", err)
	}

	result.State = models.SettlementCompleted
	result.Investment = investment

	log.WithFields(log.Fields{
		"investmentID": investment.ID,
		"profileID":    profileID,
		"paymentTxID":  paymentTxID,
		"mintTxID":     mintTxID,
	}).Info("Investment settlement completed")

	return result, nil
}

// loadInvestor fetches the profile and the effective hen price, and runs
// the pre-chain eligibility checks.
func (s *investmentService) loadInvestor(ctx context.Context, profileID uuid.UUID) (*models.Profile, decimal.Decimal, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	profile, err := uow.ProfileRepository().GetByID(ctx, profileID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, decimal.Zero, fmt.Errorf("profile not found")
	}
	if profile.KYCStatus != models.KYCStatusApproved {
		return nil, decimal.Zero, fmt.Errorf("KYC not approved")
	}
	if !profile.HasWallet() {
		return nil, decimal.Zero, fmt.Errorf("no wallet linked to profile")
	}

	henPriceKsh := config.Get().HenPriceKsh
	settings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to get platform settings: %w", err)
	}
	if settings != nil && settings.HenPriceKsh.IsPositive() {
		henPriceKsh = settings.HenPriceKsh
	}

	if err := uow.Commit(); err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return profile, henPriceKsh, nil
}

// record writes the investment row, updates the profile totals and raises
// the completion event inside one transaction.
func (s *investmentService) record(ctx context.Context, profile *models.Profile, amountKsh decimal.Decimal, shares models.ShareBreakdown, paymentTxID, mintTxID string, lockDays int) (*models.Investment, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	investment := &models.Investment{
		ProfileID:     profile.ID,
		AmountKsh:     amountKsh,
		BaseShares:    shares.Base,
		BonusShares:   shares.Bonus,
		TotalShares:   shares.Total,
		PaymentMethod: models.PaymentMethodHbar,
		PaymentTxID:   &paymentTxID,
		MintTxID:      &mintTxID,
		LockedUntil:   time.Now().UTC().AddDate(0, 0, lockDays),
		Status:        models.InvestmentStatusCompleted,
	}

	if err := uow.InvestmentRepository().Create(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	if err := uow.ProfileRepository().ApplyInvestment(ctx, profile.ID, amountKsh, shares.Total); err != nil {
		return nil, fmt.Errorf("failed to update profile totals: %w", err)
	}

	uow.EventBus().Publish(events.InvestmentCompletedEvent{
		InvestmentID: investment.ID,
		ProfileID:    profile.ID,
		AmountKsh:    amountKsh,
		TotalShares:  shares.Total,
		PaymentTxID:  paymentTxID,
		MintTxID:     mintTxID,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return investment, nil
}

func (s *investmentService) ListByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.Investment, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	investments, err := uow.InvestmentRepository().GetByProfile(ctx, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get investments: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return investments, nil
}

func (s *investmentService) ListAll(ctx context.Context, status *models.InvestmentStatus) ([]*models.Investment, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	investments, err := uow.InvestmentRepository().GetAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get investments: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return investments, nil
}
