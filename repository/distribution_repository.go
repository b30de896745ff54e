package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Rustaman254/waveUnit/database"
	"github.com/Rustaman254/waveUnit/models"
)

// DistributionRepository implements the DistributionRepository interface
type DistributionRepository struct {
	q queryable
}

// NewDistributionRepository creates a new distribution repository
func NewDistributionRepository(db *database.DB) *DistributionRepository {
	return &DistributionRepository{q: db.Pool}
}

// newDistributionRepositoryWithTx creates a new distribution repository with a transaction
func newDistributionRepositoryWithTx(tx queryable) *DistributionRepository {
	return &DistributionRepository{q: tx}
}

// normalizeDate truncates a timestamp to the start of its day
func normalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// GetRunByDate returns the distribution run for a specific date
func (r *DistributionRepository) GetRunByDate(ctx context.Context, date time.Time) (*models.DistributionRun, error) {
	query := `
		SELECT id, run_date, total_distributed_ksh, profiles_paid, execution_summary, created_at
		FROM distribution_runs
		WHERE run_date = $1
	`

	return r.scanRun(r.q.QueryRow(ctx, query, normalizeDate(date)))
}

// GetLatestRun returns the most recent distribution run
func (r *DistributionRepository) GetLatestRun(ctx context.Context) (*models.DistributionRun, error) {
	query := `
		SELECT id, run_date, total_distributed_ksh, profiles_paid, execution_summary, created_at
		FROM distribution_runs
		ORDER BY run_date DESC
		LIMIT 1
	`

	return r.scanRun(r.q.QueryRow(ctx, query))
}

func (r *DistributionRepository) scanRun(row pgx.Row) (*models.DistributionRun, error) {
	var run models.DistributionRun
	var summaryJSON []byte

	err := row.Scan(
		&run.ID,
		&run.RunDate,
		&run.TotalDistributedKsh,
		&run.ProfilesPaid,
		&summaryJSON,
		&run.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get distribution run: %w", err)
	}

	if len(summaryJSON) > 0 {
		if err := json.Unmarshal(summaryJSON, &run.ExecutionSummary); err != nil {
			return nil, fmt.Errorf("failed to unmarshal execution summary: %w", err)
		}
	}

	return &run, nil
}

// CreateRun creates a new distribution run record
func (r *DistributionRepository) CreateRun(ctx context.Context, run *models.DistributionRun) error {
	run.RunDate = normalizeDate(run.RunDate)

	summaryJSON, err := json.Marshal(run.ExecutionSummary)
	if err != nil {
		return fmt.Errorf("failed to marshal execution summary: %w", err)
	}

	query := `
		INSERT INTO distribution_runs
			(run_date, total_distributed_ksh, profiles_paid, execution_summary)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err = r.q.QueryRow(ctx, query,
		run.RunDate,
		run.TotalDistributedKsh,
		run.ProfilesPaid,
		summaryJSON,
	).Scan(&run.ID, &run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create distribution run for date %s: %w",
			run.RunDate.Format("2006-01-02"), err)
	}

	return nil
}

// CreateDistribution creates one profile's distribution entry
func (r *DistributionRepository) CreateDistribution(ctx context.Context, distribution *models.ProfitDistribution) error {
	query := `
		INSERT INTO profit_distributions
			(run_id, profile_id, amount_ksh, shares_at_distribution, tier, daily_rate, distributed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	if distribution.DistributedAt.IsZero() {
		distribution.DistributedAt = time.Now().UTC()
	}

	err := r.q.QueryRow(ctx, query,
		distribution.RunID,
		distribution.ProfileID,
		distribution.AmountKsh,
		distribution.SharesAtDistribution,
		distribution.Tier,
		distribution.DailyRate,
		distribution.DistributedAt,
	).Scan(&distribution.ID, &distribution.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create profit distribution for profile %s: %w",
			distribution.ProfileID, err)
	}

	return nil
}

// GetByProfile returns distributions for a profile, newest first
func (r *DistributionRepository) GetByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.ProfitDistribution, error) {
	query := `
		SELECT id, run_id, profile_id, amount_ksh, shares_at_distribution,
		       tier, daily_rate, distributed_at, created_at
		FROM profit_distributions
		WHERE profile_id = $1
		ORDER BY distributed_at DESC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query profit distributions: %w", err)
	}
	defer rows.Close()

	var distributions []*models.ProfitDistribution
	for rows.Next() {
		var d models.ProfitDistribution
		err := rows.Scan(
			&d.ID,
			&d.RunID,
			&d.ProfileID,
			&d.AmountKsh,
			&d.SharesAtDistribution,
			&d.Tier,
			&d.DailyRate,
			&d.DistributedAt,
			&d.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profit distribution: %w", err)
		}
		distributions = append(distributions, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profit distributions: %w", err)
	}

	return distributions, nil
}
