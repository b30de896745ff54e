package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/Rustaman254/waveUnit/events"
	"github.com/Rustaman254/waveUnit/models"
)

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByHederaAccount(ctx context.Context, account string) (*models.Profile, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) LinkWallet(ctx context.Context, id uuid.UUID, account string) error {
	args := m.Called(ctx, id, account)
	return args.Error(0)
}

func (m *MockProfileRepository) SubmitKYC(ctx context.Context, id uuid.UUID, idNumber, address, proofOfIDURL string) error {
	args := m.Called(ctx, id, idNumber, address, proofOfIDURL)
	return args.Error(0)
}

func (m *MockProfileRepository) SetKYCStatus(ctx context.Context, id uuid.UUID, status models.KYCStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockProfileRepository) ApplyInvestment(ctx context.Context, id uuid.UUID, amountKsh, shares decimal.Decimal) error {
	args := m.Called(ctx, id, amountKsh, shares)
	return args.Error(0)
}

func (m *MockProfileRepository) GetInvestorsWithShares(ctx context.Context) ([]*models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetAll(ctx context.Context) ([]*models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Profile), args.Error(1)
}

// MockInvestmentRepository is a mock implementation of InvestmentRepository
type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) Create(ctx context.Context, investment *models.Investment) error {
	args := m.Called(ctx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Investment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) GetByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.Investment, error) {
	args := m.Called(ctx, profileID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) GetAll(ctx context.Context, status *models.InvestmentStatus) ([]*models.Investment, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) LockedShares(ctx context.Context, profileID uuid.UUID, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, profileID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockWithdrawalRepository is a mock implementation of WithdrawalRepository
type MockWithdrawalRepository struct {
	mock.Mock
}

func (m *MockWithdrawalRepository) Create(ctx context.Context, withdrawal *models.Withdrawal) error {
	args := m.Called(ctx, withdrawal)
	return args.Error(0)
}

func (m *MockWithdrawalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Withdrawal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) GetByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.Withdrawal, error) {
	args := m.Called(ctx, profileID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) GetAll(ctx context.Context, status *models.WithdrawalStatus) ([]*models.Withdrawal, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.WithdrawalStatus, transactionID *string) error {
	args := m.Called(ctx, id, status, transactionID)
	return args.Error(0)
}

// MockDistributionRepository is a mock implementation of DistributionRepository
type MockDistributionRepository struct {
	mock.Mock
}

func (m *MockDistributionRepository) GetRunByDate(ctx context.Context, date time.Time) (*models.DistributionRun, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DistributionRun), args.Error(1)
}

func (m *MockDistributionRepository) GetLatestRun(ctx context.Context) (*models.DistributionRun, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DistributionRun), args.Error(1)
}

func (m *MockDistributionRepository) CreateRun(ctx context.Context, run *models.DistributionRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockDistributionRepository) CreateDistribution(ctx context.Context, distribution *models.ProfitDistribution) error {
	args := m.Called(ctx, distribution)
	return args.Error(0)
}

func (m *MockDistributionRepository) GetByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.ProfitDistribution, error) {
	args := m.Called(ctx, profileID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ProfitDistribution), args.Error(1)
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*models.PlatformSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlatformSettings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *models.PlatformSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockFarmRepository is a mock implementation of FarmRepository
type MockFarmRepository struct {
	mock.Mock
}

func (m *MockFarmRepository) Create(ctx context.Context, farm *models.Farm) error {
	args := m.Called(ctx, farm)
	return args.Error(0)
}

func (m *MockFarmRepository) Update(ctx context.Context, farm *models.Farm) error {
	args := m.Called(ctx, farm)
	return args.Error(0)
}

func (m *MockFarmRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Farm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Farm), args.Error(1)
}

func (m *MockFarmRepository) GetAll(ctx context.Context) ([]*models.Farm, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Farm), args.Error(1)
}

// MockReportRepository is a mock implementation of ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Upsert(ctx context.Context, report *models.TransparencyReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) GetByWeek(ctx context.Context, weekStart time.Time) (*models.TransparencyReport, error) {
	args := m.Called(ctx, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransparencyReport), args.Error(1)
}

func (m *MockReportRepository) GetAll(ctx context.Context, limit int) ([]*models.TransparencyReport, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TransparencyReport), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher for testing
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork. Repositories are
// plain fields set once via SetRepositories; the lifecycle methods go
// through testify expectations.
type MockUnitOfWork struct {
	mock.Mock

	profileRepo      ProfileRepository
	investmentRepo   InvestmentRepository
	withdrawalRepo   WithdrawalRepository
	distributionRepo DistributionRepository
	settingsRepo     SettingsRepository
	farmRepo         FarmRepository
	reportRepo       ReportRepository
	eventBus         EventPublisher
}

// SetRepositories configures which repository mocks the unit of work hands
// out. Nil is fine for repositories the test never touches.
func (m *MockUnitOfWork) SetRepositories(
	profileRepo ProfileRepository,
	investmentRepo InvestmentRepository,
	withdrawalRepo WithdrawalRepository,
	distributionRepo DistributionRepository,
	settingsRepo SettingsRepository,
	farmRepo FarmRepository,
	reportRepo ReportRepository,
	eventBus EventPublisher,
) {
	m.profileRepo = profileRepo
	m.investmentRepo = investmentRepo
	m.withdrawalRepo = withdrawalRepo
	m.distributionRepo = distributionRepo
	m.settingsRepo = settingsRepo
	m.farmRepo = farmRepo
	m.reportRepo = reportRepo
	m.eventBus = eventBus
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) ProfileRepository() ProfileRepository {
	return m.profileRepo
}

func (m *MockUnitOfWork) InvestmentRepository() InvestmentRepository {
	return m.investmentRepo
}

func (m *MockUnitOfWork) WithdrawalRepository() WithdrawalRepository {
	return m.withdrawalRepo
}

func (m *MockUnitOfWork) DistributionRepository() DistributionRepository {
	return m.distributionRepo
}

func (m *MockUnitOfWork) SettingsRepository() SettingsRepository {
	return m.settingsRepo
}

func (m *MockUnitOfWork) FarmRepository() FarmRepository {
	return m.farmRepo
}

func (m *MockUnitOfWork) ReportRepository() ReportRepository {
	return m.reportRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.eventBus
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}

// MockLedgerClient is a mock implementation of ledger.Client
type MockLedgerClient struct {
	mock.Mock
}

func (m *MockLedgerClient) OperatorAccount() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockLedgerClient) TransferHbar(ctx context.Context, toAccount string, amount decimal.Decimal) (string, error) {
	args := m.Called(ctx, toAccount, amount)
	return args.String(0), args.Error(1)
}

func (m *MockLedgerClient) MintShares(ctx context.Context, toAccount string, shares decimal.Decimal) (string, error) {
	args := m.Called(ctx, toAccount, shares)
	return args.String(0), args.Error(1)
}

// fixedRateSource returns a constant exchange rate
type fixedRateSource struct {
	rate decimal.Decimal
}

func (s fixedRateSource) FetchRate(ctx context.Context) decimal.Decimal {
	return s.rate
}
