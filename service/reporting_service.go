package service

import (
	"context"
	"fmt"

	"github.com/Rustaman254/waveUnit/models"
)

type reportingService struct {
	uowFactory UnitOfWorkFactory
}

// NewReportingService creates a new reporting service
func NewReportingService(uowFactory UnitOfWorkFactory) ReportingService {
	return &reportingService{
		uowFactory: uowFactory,
	}
}

func (s *reportingService) CreateFarm(ctx context.Context, farm *models.Farm) (*models.Farm, error) {
	if farm.Name == "" {
		return nil, fmt.Errorf("farm name is required")
	}
	if farm.Status == "" {
		farm.Status = models.FarmStatusActive
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.FarmRepository().Create(ctx, farm); err != nil {
		return nil, fmt.Errorf("failed to create farm: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return farm, nil
}

func (s *reportingService) UpdateFarm(ctx context.Context, farm *models.Farm) (*models.Farm, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	existing, err := uow.FarmRepository().GetByID(ctx, farm.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get farm: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("farm not found")
	}

	if err := uow.FarmRepository().Update(ctx, farm); err != nil {
		return nil, fmt.Errorf("failed to update farm: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return farm, nil
}

func (s *reportingService) ListFarms(ctx context.Context) ([]*models.Farm, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	farms, err := uow.FarmRepository().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get farms: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return farms, nil
}

// PublishReport inserts or replaces the transparency report for its week.
// Net profit is derived from the submitted revenue and cost figures.
func (s *reportingService) PublishReport(ctx context.Context, report *models.TransparencyReport) (*models.TransparencyReport, error) {
	if report.WeekStartDate.IsZero() {
		return nil, fmt.Errorf("week start date is required")
	}

	costs := report.OperatingCostsKsh.
		Add(report.FeedCostKsh).
		Add(report.LaborCostKsh).
		Add(report.OtherCostsKsh)
	report.NetProfitKsh = report.RevenueKsh.Sub(costs)

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.ReportRepository().Upsert(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to publish report: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return report, nil
}

func (s *reportingService) ListReports(ctx context.Context, limit int) ([]*models.TransparencyReport, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	reports, err := uow.ReportRepository().GetAll(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get reports: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return reports, nil
}
