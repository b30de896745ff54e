package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// KYCStatus represents the verification state of a profile
type KYCStatus string

const (
	KYCStatusPending  KYCStatus = "pending"
	KYCStatusApproved KYCStatus = "approved"
	KYCStatusRejected KYCStatus = "rejected"
)

// Role represents the access level of a profile
type Role string

const (
	RoleInvestor Role = "investor"
	RoleAdmin    Role = "admin"
)

// Profile represents an investor account with cumulative investment state
type Profile struct {
	ID               uuid.UUID       `db:"id"`
	FullName         string          `db:"full_name"`
	Email            string          `db:"email"`
	PhoneNumber      string          `db:"phone_number"`
	HederaAccountID  *string         `db:"hedera_account_id"`
	KYCStatus        KYCStatus       `db:"kyc_status"`
	KYCSubmittedAt   *time.Time      `db:"kyc_submitted_at"`
	KYCApprovedAt    *time.Time      `db:"kyc_approved_at"`
	IDNumber         *string         `db:"id_number"`
	Address          *string         `db:"address"`
	ProofOfIDURL     *string         `db:"proof_of_id_url"`
	TotalInvestedKsh decimal.Decimal `db:"total_invested_ksh"`
	TotalShares      decimal.Decimal `db:"total_shares"`
	Role             Role            `db:"role"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// HasWallet reports whether a Hedera account is linked to the profile
func (p *Profile) HasWallet() bool {
	return p.HederaAccountID != nil && *p.HederaAccountID != ""
}
