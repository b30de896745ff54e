package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Rustaman254/waveUnit/database"
	"github.com/Rustaman254/waveUnit/models"
)

const withdrawalColumns = `
	id, profile_id, amount_ksh, shares_burned, method, destination,
	status, transaction_id, processed_at, created_at
`

// WithdrawalRepository implements the WithdrawalRepository interface
type WithdrawalRepository struct {
	q queryable
}

// NewWithdrawalRepository creates a new withdrawal repository
func NewWithdrawalRepository(db *database.DB) *WithdrawalRepository {
	return &WithdrawalRepository{q: db.Pool}
}

// newWithdrawalRepositoryWithTx creates a new withdrawal repository with a transaction
func newWithdrawalRepositoryWithTx(tx queryable) *WithdrawalRepository {
	return &WithdrawalRepository{q: tx}
}

func scanWithdrawal(row pgx.Row) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	err := row.Scan(
		&withdrawal.ID,
		&withdrawal.ProfileID,
		&withdrawal.AmountKsh,
		&withdrawal.SharesBurned,
		&withdrawal.Method,
		&withdrawal.Destination,
		&withdrawal.Status,
		&withdrawal.TransactionID,
		&withdrawal.ProcessedAt,
		&withdrawal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

// Create creates a new withdrawal request
func (r *WithdrawalRepository) Create(ctx context.Context, withdrawal *models.Withdrawal) error {
	if withdrawal.Status == "" {
		withdrawal.Status = models.WithdrawalStatusPending
	}

	query := `
		INSERT INTO withdrawals
			(profile_id, amount_ksh, shares_burned, method, destination, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		withdrawal.ProfileID,
		withdrawal.AmountKsh,
		withdrawal.SharesBurned,
		withdrawal.Method,
		withdrawal.Destination,
		withdrawal.Status,
	).Scan(&withdrawal.ID, &withdrawal.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create withdrawal for profile %s: %w", withdrawal.ProfileID, err)
	}

	return nil
}

// GetByID retrieves a withdrawal by its ID
func (r *WithdrawalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1`

	withdrawal, err := scanWithdrawal(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawal %s: %w", id, err)
	}

	return withdrawal, nil
}

// GetByProfile returns withdrawals for a profile, newest first
func (r *WithdrawalRepository) GetByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.Withdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	return r.queryWithdrawals(ctx, query, profileID, limit)
}

// GetAll returns withdrawals, optionally filtered by status
func (r *WithdrawalRepository) GetAll(ctx context.Context, status *models.WithdrawalStatus) ([]*models.Withdrawal, error) {
	if status != nil {
		query := `
			SELECT ` + withdrawalColumns + `
			FROM withdrawals
			WHERE status = $1
			ORDER BY created_at DESC
		`
		return r.queryWithdrawals(ctx, query, *status)
	}

	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals ORDER BY created_at DESC`
	return r.queryWithdrawals(ctx, query)
}

// UpdateStatus updates a withdrawal's status and transaction reference;
// terminal states stamp processed_at
func (r *WithdrawalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.WithdrawalStatus, transactionID *string) error {
	query := `
		UPDATE withdrawals
		SET status = $1,
		    transaction_id = COALESCE($2, transaction_id),
		    processed_at = CASE WHEN $1 IN ('completed', 'failed') THEN NOW() ELSE processed_at END
		WHERE id = $3
	`

	result, err := r.q.Exec(ctx, query, status, transactionID, id)
	if err != nil {
		return fmt.Errorf("failed to update withdrawal %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("withdrawal %s not found", id)
	}

	return nil
}

func (r *WithdrawalRepository) queryWithdrawals(ctx context.Context, query string, args ...any) ([]*models.Withdrawal, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawals: %w", err)
	}
	defer rows.Close()

	var withdrawals []*models.Withdrawal
	for rows.Next() {
		withdrawal, err := scanWithdrawal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan withdrawal: %w", err)
		}
		withdrawals = append(withdrawals, withdrawal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate withdrawals: %w", err)
	}

	return withdrawals, nil
}
