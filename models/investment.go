package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod identifies the rail an investment was paid on
type PaymentMethod string

const (
	PaymentMethodHbar  PaymentMethod = "hbar"
	PaymentMethodMpesa PaymentMethod = "mpesa"
)

// InvestmentStatus represents the lifecycle state of an investment
type InvestmentStatus string

const (
	InvestmentStatusPending   InvestmentStatus = "pending"
	InvestmentStatusCompleted InvestmentStatus = "completed"
	InvestmentStatusFailed    InvestmentStatus = "failed"
)

// Investment is an immutable record of one completed settlement.
// It is only written after both on-chain steps succeeded.
type Investment struct {
	ID            uuid.UUID        `db:"id"`
	ProfileID     uuid.UUID        `db:"profile_id"`
	AmountKsh     decimal.Decimal  `db:"amount_ksh"`
	BaseShares    decimal.Decimal  `db:"base_shares"`
	BonusShares   decimal.Decimal  `db:"bonus_shares"`
	TotalShares   decimal.Decimal  `db:"total_shares"`
	PaymentMethod PaymentMethod    `db:"payment_method"`
	PaymentTxID   *string          `db:"payment_tx_id"`
	MintTxID      *string          `db:"mint_tx_id"`
	LockedUntil   time.Time        `db:"locked_until"`
	Status        InvestmentStatus `db:"status"`
	CreatedAt     time.Time        `db:"created_at"`
}

// Locked reports whether the investment's shares are still inside the lock period
func (i *Investment) Locked(now time.Time) bool {
	return now.Before(i.LockedUntil)
}
