package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Rustaman254/waveUnit/database"
	"github.com/Rustaman254/waveUnit/models"
)

const profileColumns = `
	id, full_name, email, phone_number, hedera_account_id,
	kyc_status, kyc_submitted_at, kyc_approved_at,
	id_number, address, proof_of_id_url,
	total_invested_ksh, total_shares, role, created_at, updated_at
`

// ProfileRepository implements the ProfileRepository interface
type ProfileRepository struct {
	q queryable
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *database.DB) *ProfileRepository {
	return &ProfileRepository{q: db.Pool}
}

// newProfileRepositoryWithTx creates a new profile repository with a transaction
func newProfileRepositoryWithTx(tx queryable) *ProfileRepository {
	return &ProfileRepository{q: tx}
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile
	err := row.Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Email,
		&profile.PhoneNumber,
		&profile.HederaAccountID,
		&profile.KYCStatus,
		&profile.KYCSubmittedAt,
		&profile.KYCApprovedAt,
		&profile.IDNumber,
		&profile.Address,
		&profile.ProofOfIDURL,
		&profile.TotalInvestedKsh,
		&profile.TotalShares,
		&profile.Role,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByID retrieves a profile by its ID
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	profile, err := scanProfile(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}

	return profile, nil
}

// GetByHederaAccount retrieves a profile by its linked wallet account
func (r *ProfileRepository) GetByHederaAccount(ctx context.Context, account string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE hedera_account_id = $1`

	profile, err := scanProfile(r.q.QueryRow(ctx, query, account))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile by hedera account %s: %w", account, err)
	}

	return profile, nil
}

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if profile.KYCStatus == "" {
		profile.KYCStatus = models.KYCStatusPending
	}
	if profile.Role == "" {
		profile.Role = models.RoleInvestor
	}

	query := `
		INSERT INTO profiles (full_name, email, phone_number, kyc_status, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, total_invested_ksh, total_shares, created_at, updated_at
	`

	err := r.q.QueryRow(ctx, query,
		profile.FullName,
		profile.Email,
		profile.PhoneNumber,
		profile.KYCStatus,
		profile.Role,
	).Scan(
		&profile.ID,
		&profile.TotalInvestedKsh,
		&profile.TotalShares,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create profile for %s: %w", profile.FullName, err)
	}

	return nil
}

// LinkWallet sets the Hedera account linked to a profile
func (r *ProfileRepository) LinkWallet(ctx context.Context, id uuid.UUID, account string) error {
	query := `
		UPDATE profiles
		SET hedera_account_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.q.Exec(ctx, query, account, id)
	if err != nil {
		return fmt.Errorf("failed to link wallet for profile %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile %s not found", id)
	}

	return nil
}

// SubmitKYC records a KYC submission and resets the status to pending
func (r *ProfileRepository) SubmitKYC(ctx context.Context, id uuid.UUID, idNumber, address, proofOfIDURL string) error {
	query := `
		UPDATE profiles
		SET id_number = $1, address = $2, proof_of_id_url = $3,
		    kyc_status = 'pending', kyc_submitted_at = NOW(), kyc_approved_at = NULL,
		    updated_at = NOW()
		WHERE id = $4
	`

	result, err := r.q.Exec(ctx, query, idNumber, address, proofOfIDURL, id)
	if err != nil {
		return fmt.Errorf("failed to submit KYC for profile %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile %s not found", id)
	}

	return nil
}

// SetKYCStatus updates KYC status; approval stamps kyc_approved_at
func (r *ProfileRepository) SetKYCStatus(ctx context.Context, id uuid.UUID, status models.KYCStatus) error {
	query := `
		UPDATE profiles
		SET kyc_status = $1,
		    kyc_approved_at = CASE WHEN $1 = 'approved' THEN NOW() ELSE NULL END,
		    updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to set KYC status for profile %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile %s not found", id)
	}

	return nil
}

// ApplyInvestment atomically increments a profile's cumulative totals.
// The increment form avoids the read-then-write lost update on the totals.
func (r *ProfileRepository) ApplyInvestment(ctx context.Context, id uuid.UUID, amountKsh, shares decimal.Decimal) error {
	if !amountKsh.IsPositive() || !shares.IsPositive() {
		return fmt.Errorf("investment amount and shares must be positive")
	}

	query := `
		UPDATE profiles
		SET total_invested_ksh = total_invested_ksh + $1,
		    total_shares = total_shares + $2,
		    updated_at = NOW()
		WHERE id = $3
	`

	result, err := r.q.Exec(ctx, query, amountKsh, shares, id)
	if err != nil {
		return fmt.Errorf("failed to apply investment to profile %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile %s not found", id)
	}

	return nil
}

// GetInvestorsWithShares returns approved investor profiles holding shares
func (r *ProfileRepository) GetInvestorsWithShares(ctx context.Context) ([]*models.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE role = 'investor' AND kyc_status = 'approved' AND total_shares > 0
		ORDER BY total_invested_ksh DESC
	`

	return r.queryProfiles(ctx, query)
}

// GetAll returns all profiles
func (r *ProfileRepository) GetAll(ctx context.Context) ([]*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`

	return r.queryProfiles(ctx, query)
}

func (r *ProfileRepository) queryProfiles(ctx context.Context, query string, args ...any) ([]*models.Profile, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}

	return profiles, nil
}
