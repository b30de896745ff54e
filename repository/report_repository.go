package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Rustaman254/waveUnit/database"
	"github.com/Rustaman254/waveUnit/models"
)

const reportColumns = `
	id, week_start_date, total_hens, eggs_produced,
	revenue_ksh, operating_costs_ksh, feed_cost_ksh, labor_cost_ksh, other_costs_ksh,
	net_profit_ksh, photos, notes, published_at, created_at
`

// ReportRepository implements the ReportRepository interface
type ReportRepository struct {
	q queryable
}

// NewReportRepository creates a new transparency report repository
func NewReportRepository(db *database.DB) *ReportRepository {
	return &ReportRepository{q: db.Pool}
}

// newReportRepositoryWithTx creates a new report repository with a transaction
func newReportRepositoryWithTx(tx queryable) *ReportRepository {
	return &ReportRepository{q: tx}
}

func scanReport(row pgx.Row) (*models.TransparencyReport, error) {
	var report models.TransparencyReport
	err := row.Scan(
		&report.ID,
		&report.WeekStartDate,
		&report.TotalHens,
		&report.EggsProduced,
		&report.RevenueKsh,
		&report.OperatingCostsKsh,
		&report.FeedCostKsh,
		&report.LaborCostKsh,
		&report.OtherCostsKsh,
		&report.NetProfitKsh,
		&report.Photos,
		&report.Notes,
		&report.PublishedAt,
		&report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Upsert inserts or replaces the report for its week_start_date
func (r *ReportRepository) Upsert(ctx context.Context, report *models.TransparencyReport) error {
	report.WeekStartDate = normalizeDate(report.WeekStartDate)
	if report.Photos == nil {
		report.Photos = []string{}
	}
	if report.PublishedAt.IsZero() {
		report.PublishedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO transparency_reports
			(week_start_date, total_hens, eggs_produced,
			 revenue_ksh, operating_costs_ksh, feed_cost_ksh, labor_cost_ksh, other_costs_ksh,
			 net_profit_ksh, photos, notes, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (week_start_date) DO UPDATE SET
			total_hens = EXCLUDED.total_hens,
			eggs_produced = EXCLUDED.eggs_produced,
			revenue_ksh = EXCLUDED.revenue_ksh,
			operating_costs_ksh = EXCLUDED.operating_costs_ksh,
			feed_cost_ksh = EXCLUDED.feed_cost_ksh,
			labor_cost_ksh = EXCLUDED.labor_cost_ksh,
			other_costs_ksh = EXCLUDED.other_costs_ksh,
			net_profit_ksh = EXCLUDED.net_profit_ksh,
			photos = EXCLUDED.photos,
			notes = EXCLUDED.notes,
			published_at = EXCLUDED.published_at
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		report.WeekStartDate,
		report.TotalHens,
		report.EggsProduced,
		report.RevenueKsh,
		report.OperatingCostsKsh,
		report.FeedCostKsh,
		report.LaborCostKsh,
		report.OtherCostsKsh,
		report.NetProfitKsh,
		report.Photos,
		report.Notes,
		report.PublishedAt,
	).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert transparency report for week %s: %w",
			report.WeekStartDate.Format("2006-01-02"), err)
	}

	return nil
}

// GetByWeek returns the report for a week start date
func (r *ReportRepository) GetByWeek(ctx context.Context, weekStart time.Time) (*models.TransparencyReport, error) {
	query := `SELECT ` + reportColumns + ` FROM transparency_reports WHERE week_start_date = $1`

	report, err := scanReport(r.q.QueryRow(ctx, query, normalizeDate(weekStart)))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transparency report for week %s: %w",
			weekStart.Format("2006-01-02"), err)
	}

	return report, nil
}

// GetAll returns published reports, newest week first
func (r *ReportRepository) GetAll(ctx context.Context, limit int) ([]*models.TransparencyReport, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM transparency_reports
		ORDER BY week_start_date DESC
		LIMIT $1
	`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transparency reports: %w", err)
	}
	defer rows.Close()

	var reports []*models.TransparencyReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transparency report: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transparency reports: %w", err)
	}

	return reports, nil
}
