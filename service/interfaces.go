package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Rustaman254/waveUnit/events"
	"github.com/Rustaman254/waveUnit/models"
)

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// GetByID retrieves a profile by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)

	// GetByHederaAccount retrieves a profile by its linked wallet account
	GetByHederaAccount(ctx context.Context, account string) (*models.Profile, error)

	// Create creates a new profile
	Create(ctx context.Context, profile *models.Profile) error

	// LinkWallet sets the Hedera account linked to a profile
	LinkWallet(ctx context.Context, id uuid.UUID, account string) error

	// SubmitKYC records a KYC submission and resets the status to pending
	SubmitKYC(ctx context.Context, id uuid.UUID, idNumber, address, proofOfIDURL string) error

	// SetKYCStatus updates KYC status; approval stamps kyc_approved_at
	SetKYCStatus(ctx context.Context, id uuid.UUID, status models.KYCStatus) error

	// ApplyInvestment atomically increments the cumulative invested amount
	// and share totals of a profile
	ApplyInvestment(ctx context.Context, id uuid.UUID, amountKsh, shares decimal.Decimal) error

	// GetInvestorsWithShares returns approved investor profiles holding shares
	GetInvestorsWithShares(ctx context.Context) ([]*models.Profile, error)

	// GetAll returns all profiles
	GetAll(ctx context.Context) ([]*models.Profile, error)
}

// InvestmentRepository defines the interface for investment data access
type InvestmentRepository interface {
	// Create creates a new investment record
	Create(ctx context.Context, investment *models.Investment) error

	// GetByID retrieves an investment by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Investment, error)

	// GetByProfile returns investments for a profile, newest first
	GetByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.Investment, error)

	// GetAll returns investments, optionally filtered by status
	GetAll(ctx context.Context, status *models.InvestmentStatus) ([]*models.Investment, error)

	// LockedShares returns the share total of a profile's completed
	// investments still inside their lock period at the given time
	LockedShares(ctx context.Context, profileID uuid.UUID, asOf time.Time) (decimal.Decimal, error)
}

// WithdrawalRepository defines the interface for withdrawal data access
type WithdrawalRepository interface {
	// Create creates a new withdrawal request
	Create(ctx context.Context, withdrawal *models.Withdrawal) error

	// GetByID retrieves a withdrawal by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Withdrawal, error)

	// GetByProfile returns withdrawals for a profile, newest first
	GetByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.Withdrawal, error)

	// GetAll returns withdrawals, optionally filtered by status
	GetAll(ctx context.Context, status *models.WithdrawalStatus) ([]*models.Withdrawal, error)

	// UpdateStatus updates a withdrawal's status and transaction reference;
	// terminal states stamp processed_at
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.WithdrawalStatus, transactionID *string) error
}

// DistributionRepository defines the interface for profit distribution data access
type DistributionRepository interface {
	// GetRunByDate returns the distribution run for a specific date
	GetRunByDate(ctx context.Context, date time.Time) (*models.DistributionRun, error)

	// GetLatestRun returns the most recent distribution run
	GetLatestRun(ctx context.Context) (*models.DistributionRun, error)

	// CreateRun creates a new distribution run record
	CreateRun(ctx context.Context, run *models.DistributionRun) error

	// CreateDistribution creates one profile's distribution entry
	CreateDistribution(ctx context.Context, distribution *models.ProfitDistribution) error

	// GetByProfile returns distributions for a profile, newest first
	GetByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.ProfitDistribution, error)
}

// SettingsRepository defines the interface for platform settings data access
type SettingsRepository interface {
	// Get returns the settings singleton, or nil if none has been saved
	Get(ctx context.Context) (*models.PlatformSettings, error)

	// Save upserts the settings singleton
	Save(ctx context.Context, settings *models.PlatformSettings) error
}

// FarmRepository defines the interface for farm data access
type FarmRepository interface {
	Create(ctx context.Context, farm *models.Farm) error
	Update(ctx context.Context, farm *models.Farm) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Farm, error)
	GetAll(ctx context.Context) ([]*models.Farm, error)
}

// ReportRepository defines the interface for transparency report data access
type ReportRepository interface {
	// Upsert inserts or replaces the report for its week_start_date
	Upsert(ctx context.Context, report *models.TransparencyReport) error

	// GetByWeek returns the report for a week start date
	GetByWeek(ctx context.Context, weekStart time.Time) (*models.TransparencyReport, error)

	// GetAll returns published reports, newest week first
	GetAll(ctx context.Context, limit int) ([]*models.TransparencyReport, error)
}

// ProfileService defines the interface for investor profile operations
type ProfileService interface {
	// Register creates a new investor profile
	Register(ctx context.Context, fullName, email, phone string) (*models.Profile, error)

	// GetProfile retrieves a profile by ID
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)

	// LinkWallet links a Hedera account to a profile
	LinkWallet(ctx context.Context, id uuid.UUID, account string) (*models.Profile, error)

	// SubmitKYC records a KYC submission for review
	SubmitKYC(ctx context.Context, id uuid.UUID, idNumber, address, proofOfIDURL string) error

	// ReviewKYC approves or rejects a pending KYC submission
	ReviewKYC(ctx context.Context, id uuid.UUID, approve bool) error

	// ListProfiles returns all profiles
	ListProfiles(ctx context.Context) ([]*models.Profile, error)
}

// InvestmentService runs the settlement sequence and reads investment history
type InvestmentService interface {
	// Invest runs one pay-mint-record settlement sequence for a profile.
	// The returned result carries the final state and both transaction
	// references even when the sequence aborted mid-way.
	Invest(ctx context.Context, profileID uuid.UUID, amountKsh decimal.Decimal) (*models.SettlementResult, error)

	// ListByProfile returns a profile's investments
	ListByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.Investment, error)

	// ListAll returns investments, optionally filtered by status
	ListAll(ctx context.Context, status *models.InvestmentStatus) ([]*models.Investment, error)
}

// WithdrawalService defines the interface for withdrawal operations
type WithdrawalService interface {
	// Request creates a pending withdrawal after lock-period and balance checks
	Request(ctx context.Context, profileID uuid.UUID, amountKsh decimal.Decimal, method models.WithdrawalMethod, destination string) (*models.Withdrawal, error)

	// Approve moves a pending withdrawal to completed with a payout reference
	Approve(ctx context.Context, id uuid.UUID, transactionID string) error

	// Reject moves a pending withdrawal to failed
	Reject(ctx context.Context, id uuid.UUID) error

	// ListByProfile returns a profile's withdrawals
	ListByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.Withdrawal, error)

	// ListAll returns withdrawals, optionally filtered by status
	ListAll(ctx context.Context, status *models.WithdrawalStatus) ([]*models.Withdrawal, error)
}

// DistributionService computes and records daily profit distributions
type DistributionService interface {
	// RunDaily executes the distribution for a date; it is idempotent per
	// day and returns the existing run when one was already recorded
	RunDaily(ctx context.Context, date time.Time) (*models.DistributionRun, error)

	// History returns a profile's past distributions
	History(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.ProfitDistribution, error)
}

// SettingsService defines the interface for platform settings operations
type SettingsService interface {
	// GetSettings returns the settings singleton, creating defaults if absent
	GetSettings(ctx context.Context) (*models.PlatformSettings, error)

	// UpdateSettings replaces the settings singleton
	UpdateSettings(ctx context.Context, settings *models.PlatformSettings) (*models.PlatformSettings, error)
}

// ReportingService defines the interface for farm and transparency report operations
type ReportingService interface {
	CreateFarm(ctx context.Context, farm *models.Farm) (*models.Farm, error)
	UpdateFarm(ctx context.Context, farm *models.Farm) (*models.Farm, error)
	ListFarms(ctx context.Context) ([]*models.Farm, error)

	// PublishReport inserts or replaces the weekly transparency report
	PublishReport(ctx context.Context, report *models.TransparencyReport) (*models.TransparencyReport, error)
	ListReports(ctx context.Context, limit int) ([]*models.TransparencyReport, error)
}

// RateSource provides the current HBAR/KSh exchange rate. Implementations
// never fail; they fall back to a constant instead.
type RateSource interface {
	FetchRate(ctx context.Context) decimal.Decimal
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	ProfileRepository() ProfileRepository
	InvestmentRepository() InvestmentRepository
	WithdrawalRepository() WithdrawalRepository
	DistributionRepository() DistributionRepository
	SettingsRepository() SettingsRepository
	FarmRepository() FarmRepository
	ReportRepository() ReportRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// Create creates a new UnitOfWork instance
	Create() UnitOfWork
}
