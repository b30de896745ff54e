package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Rustaman254/waveUnit/config"
	"github.com/Rustaman254/waveUnit/events"
	"github.com/Rustaman254/waveUnit/models"
)

type withdrawalService struct {
	uowFactory UnitOfWorkFactory
}

// NewWithdrawalService creates a new withdrawal service
func NewWithdrawalService(uowFactory UnitOfWorkFactory) WithdrawalService {
	return &withdrawalService{
		uowFactory: uowFactory,
	}
}

// Request creates a pending withdrawal after checking that the profile's
// unlocked holdings cover the requested amount. Shares from investments
// still inside their lock period cannot back a withdrawal.
func (s *withdrawalService) Request(ctx context.Context, profileID uuid.UUID, amountKsh decimal.Decimal, method models.WithdrawalMethod, destination string) (*models.Withdrawal, error) {
	if !amountKsh.IsPositive() {
		return nil, fmt.Errorf("withdrawal amount must be positive")
	}
	if destination == "" {
		return nil, fmt.Errorf("destination is required")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	profile, err := uow.ProfileRepository().GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("profile not found")
	}
	if profile.KYCStatus != models.KYCStatusApproved {
		return nil, fmt.Errorf("KYC not approved")
	}

	now := time.Now().UTC()
	locked, err := uow.InvestmentRepository().LockedShares(ctx, profileID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get locked shares: %w", err)
	}

	henPriceKsh := config.Get().HenPriceKsh
	settings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get platform settings: %w", err)
	}
	if settings != nil && settings.HenPriceKsh.IsPositive() {
		henPriceKsh = settings.HenPriceKsh
	}

	withdrawable := profile.TotalShares.Sub(locked).Mul(henPriceKsh)
	if amountKsh.GreaterThan(withdrawable) {
		return nil, fmt.Errorf("amount exceeds withdrawable balance of %s KSh", withdrawable.StringFixed(2))
	}

	withdrawal := &models.Withdrawal{
		ProfileID:   profileID,
		AmountKsh:   amountKsh,
		Method:      method,
		Destination: destination,
		Status:      models.WithdrawalStatusPending,
	}

	if err := uow.WithdrawalRepository().Create(ctx, withdrawal); err != nil {
		return nil, fmt.Errorf("failed to create withdrawal: %w", err)
	}

	uow.EventBus().Publish(events.WithdrawalRequestedEvent{
		WithdrawalID: withdrawal.ID,
		ProfileID:    profileID,
		AmountKsh:    amountKsh,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return withdrawal, nil
}

func (s *withdrawalService) Approve(ctx context.Context, id uuid.UUID, transactionID string) error {
	return s.resolve(ctx, id, models.WithdrawalStatusCompleted, &transactionID)
}

func (s *withdrawalService) Reject(ctx context.Context, id uuid.UUID) error {
	return s.resolve(ctx, id, models.WithdrawalStatusFailed, nil)
}

func (s *withdrawalService) resolve(ctx context.Context, id uuid.UUID, status models.WithdrawalStatus, transactionID *string) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	withdrawal, err := uow.WithdrawalRepository().GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get withdrawal: %w", err)
	}
	if withdrawal == nil {
		return fmt.Errorf("withdrawal not found")
	}
	if withdrawal.Status != models.WithdrawalStatusPending {
		return fmt.Errorf("withdrawal is %s, only pending withdrawals can be resolved", withdrawal.Status)
	}

	if err := uow.WithdrawalRepository().UpdateStatus(ctx, id, status, transactionID); err != nil {
		return fmt.Errorf("failed to update withdrawal: %w", err)
	}

	return uow.Commit()
}

func (s *withdrawalService) ListByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.Withdrawal, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	withdrawals, err := uow.WithdrawalRepository().GetByProfile(ctx, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawals: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return withdrawals, nil
}

func (s *withdrawalService) ListAll(ctx context.Context, status *models.WithdrawalStatus) ([]*models.Withdrawal, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	withdrawals, err := uow.WithdrawalRepository().GetAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawals: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return withdrawals, nil
}
