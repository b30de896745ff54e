package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Rustaman254/waveUnit/events"
	"github.com/Rustaman254/waveUnit/models"
)

type profileService struct {
	uowFactory UnitOfWorkFactory
}

// NewProfileService creates a new profile service
func NewProfileService(uowFactory UnitOfWorkFactory) ProfileService {
	return &profileService{
		uowFactory: uowFactory,
	}
}

func (s *profileService) Register(ctx context.Context, fullName, email, phone string) (*models.Profile, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(strings.ToLower(email))
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	profile := &models.Profile{
		FullName:    fullName,
		Email:       email,
		PhoneNumber: phone,
		KYCStatus:   models.KYCStatusPending,
		Role:        models.RoleInvestor,
	}

	if err := uow.ProfileRepository().Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	uow.EventBus().Publish(events.ProfileCreatedEvent{
		ProfileID: profile.ID,
		FullName:  profile.FullName,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return profile, nil
}

func (s *profileService) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	profile, err := uow.ProfileRepository().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("profile not found")
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return profile, nil
}

func (s *profileService) LinkWallet(ctx context.Context, id uuid.UUID, account string) (*models.Profile, error) {
	account = strings.TrimSpace(account)
	if account == "" {
		return nil, fmt.Errorf("hedera account is required")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	profile, err := uow.ProfileRepository().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("profile not found")
	}

	// One wallet per profile
	existing, err := uow.ProfileRepository().GetByHederaAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to check wallet: %w", err)
	}
	if existing != nil && existing.ID != id {
		return nil, fmt.Errorf("wallet already linked to another profile")
	}

	if err := uow.ProfileRepository().LinkWallet(ctx, id, account); err != nil {
		return nil, fmt.Errorf("failed to link wallet: %w", err)
	}
	profile.HederaAccountID = &account

	uow.EventBus().Publish(events.WalletLinkedEvent{
		ProfileID:       id,
		HederaAccountID: account,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return profile, nil
}

func (s *profileService) SubmitKYC(ctx context.Context, id uuid.UUID, idNumber, address, proofOfIDURL string) error {
	if strings.TrimSpace(idNumber) == "" {
		return fmt.Errorf("ID number is required")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	profile, err := uow.ProfileRepository().GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return fmt.Errorf("profile not found")
	}
	if profile.KYCStatus == models.KYCStatusApproved {
		return fmt.Errorf("KYC already approved")
	}

	if err := uow.ProfileRepository().SubmitKYC(ctx, id, idNumber, address, proofOfIDURL); err != nil {
		return fmt.Errorf("failed to submit KYC: %w", err)
	}

	return uow.Commit()
}

func (s *profileService) ReviewKYC(ctx context.Context, id uuid.UUID, approve bool) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	profile, err := uow.ProfileRepository().GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return fmt.Errorf("profile not found")
	}
	if profile.KYCSubmittedAt == nil {
		return fmt.Errorf("no KYC submission to review")
	}

	status := models.KYCStatusRejected
	if approve {
		status = models.KYCStatusApproved
	}

	if err := uow.ProfileRepository().SetKYCStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update KYC status: %w", err)
	}

	return uow.Commit()
}

func (s *profileService) ListProfiles(ctx context.Context) ([]*models.Profile, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	profiles, err := uow.ProfileRepository().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return profiles, nil
}
