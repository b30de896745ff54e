package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawalMethod identifies how a withdrawal is paid out
type WithdrawalMethod string

const (
	WithdrawalMethodMpesa     WithdrawalMethod = "mpesa"
	WithdrawalMethodHbar      WithdrawalMethod = "hbar"
	WithdrawalMethodHensToken WithdrawalMethod = "hens_token"
)

// WithdrawalStatus represents the lifecycle state of a withdrawal request
type WithdrawalStatus string

const (
	WithdrawalStatusPending    WithdrawalStatus = "pending"
	WithdrawalStatusProcessing WithdrawalStatus = "processing"
	WithdrawalStatusCompleted  WithdrawalStatus = "completed"
	WithdrawalStatusFailed     WithdrawalStatus = "failed"
)

// Withdrawal represents a request to pay out funds or shares to an investor
type Withdrawal struct {
	ID            uuid.UUID        `db:"id"`
	ProfileID     uuid.UUID        `db:"profile_id"`
	AmountKsh     decimal.Decimal  `db:"amount_ksh"`
	SharesBurned  *decimal.Decimal `db:"shares_burned"`
	Method        WithdrawalMethod `db:"method"`
	Destination   string           `db:"destination"`
	Status        WithdrawalStatus `db:"status"`
	TransactionID *string          `db:"transaction_id"`
	ProcessedAt   *time.Time       `db:"processed_at"`
	CreatedAt     time.Time        `db:"created_at"`
}
