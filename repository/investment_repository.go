package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Rustaman254/waveUnit/database"
	"github.com/Rustaman254/waveUnit/models"
)

const investmentColumns = `
	id, profile_id, amount_ksh, base_shares, bonus_shares, total_shares,
	payment_method, payment_tx_id, mint_tx_id, locked_until, status, created_at
`

// InvestmentRepository implements the InvestmentRepository interface
type InvestmentRepository struct {
	q queryable
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(db *database.DB) *InvestmentRepository {
	return &InvestmentRepository{q: db.Pool}
}

// newInvestmentRepositoryWithTx creates a new investment repository with a transaction
func newInvestmentRepositoryWithTx(tx queryable) *InvestmentRepository {
	return &InvestmentRepository{q: tx}
}

func scanInvestment(row pgx.Row) (*models.Investment, error) {
	var investment models.Investment
	err := row.Scan(
		&investment.ID,
		&investment.ProfileID,
		&investment.AmountKsh,
		&investment.BaseShares,
		&investment.BonusShares,
		&investment.TotalShares,
		&investment.PaymentMethod,
		&investment.PaymentTxID,
		&investment.MintTxID,
		&investment.LockedUntil,
		&investment.Status,
		&investment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &investment, nil
}

// Create creates a new investment record
func (r *InvestmentRepository) Create(ctx context.Context, investment *models.Investment) error {
	query := `
		INSERT INTO investments
			(profile_id, amount_ksh, base_shares, bonus_shares, total_shares,
			 payment_method, payment_tx_id, mint_tx_id, locked_until, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		investment.ProfileID,
		investment.AmountKsh,
		investment.BaseShares,
		investment.BonusShares,
		investment.TotalShares,
		investment.PaymentMethod,
		investment.PaymentTxID,
		investment.MintTxID,
		investment.LockedUntil,
		investment.Status,
	).Scan(&investment.ID, &investment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create investment for profile %s: %w", investment.ProfileID, err)
	}

	return nil
}

// GetByID retrieves an investment by its ID
func (r *InvestmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE id = $1`

	investment, err := scanInvestment(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get investment %s: %w", id, err)
	}

	return investment, nil
}

// GetByProfile returns investments for a profile, newest first
func (r *InvestmentRepository) GetByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.Investment, error) {
	query := `
		SELECT ` + investmentColumns + `
		FROM investments
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	return r.queryInvestments(ctx, query, profileID, limit)
}

// GetAll returns investments, optionally filtered by status
func (r *InvestmentRepository) GetAll(ctx context.Context, status *models.InvestmentStatus) ([]*models.Investment, error) {
	if status != nil {
		query := `
			SELECT ` + investmentColumns + `
			FROM investments
			WHERE status = $1
			ORDER BY created_at DESC
		`
		return r.queryInvestments(ctx, query, *status)
	}

	query := `SELECT ` + investmentColumns + ` FROM investments ORDER BY created_at DESC`
	return r.queryInvestments(ctx, query)
}

// LockedShares returns the share total of a profile's completed investments
// still inside their lock period at the given time
func (r *InvestmentRepository) LockedShares(ctx context.Context, profileID uuid.UUID, asOf time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_shares), 0)
		FROM investments
		WHERE profile_id = $1 AND status = 'completed' AND locked_until > $2
	`

	var locked decimal.Decimal
	err := r.q.QueryRow(ctx, query, profileID, asOf).Scan(&locked)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get locked shares for profile %s: %w", profileID, err)
	}

	return locked, nil
}

func (r *InvestmentRepository) queryInvestments(ctx context.Context, query string, args ...any) ([]*models.Investment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments: %w", err)
	}
	defer rows.Close()

	var investments []*models.Investment
	for rows.Next() {
		investment, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		investments = append(investments, investment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate investments: %w", err)
	}

	return investments, nil
}
