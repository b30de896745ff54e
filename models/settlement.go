package models

import (
	"github.com/shopspring/decimal"
)

// SettlementState is the explicit state of one investment settlement sequence.
// The sequence is strictly linear: initiated -> paying -> minting -> recording
// -> completed. Any failure moves it to aborted; already-applied on-chain
// effects are NOT compensated.
type SettlementState string

const (
	SettlementInitiated SettlementState = "initiated"
	SettlementPaying    SettlementState = "paying"
	SettlementMinting   SettlementState = "minting"
	SettlementRecording SettlementState = "recording"
	SettlementCompleted SettlementState = "completed"
	SettlementAborted   SettlementState = "aborted"
)

// ShareBreakdown is the result of converting a fiat amount into shares
type ShareBreakdown struct {
	Base  decimal.Decimal
	Bonus decimal.Decimal
	Total decimal.Decimal
}

// SettlementResult describes the outcome of one settlement sequence.
// FailedState is set when State is aborted and names the step that failed;
// PaymentTxID remains set on a mint failure, which is exactly the
// funds-taken-shares-not-issued window: the payment is final on chain even
// though no investment was recorded.
type SettlementResult struct {
	State       SettlementState
	FailedState SettlementState
	Investment  *Investment
	Shares      ShareBreakdown
	Rate        decimal.Decimal
	HbarPaid    decimal.Decimal
	PaymentTxID string
	MintTxID    string
}
