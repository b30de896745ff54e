// Package ledger is the boundary to the Hedera network. Services depend on
// the Client interface only, which carries the minimal capability set the
// platform actually uses: signer identity, a native HBAR transfer and a
// share-token mint, each blocking until one confirmed receipt.
package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// Client is the wallet/ledger boundary used by the settlement sequencer
type Client interface {
	// OperatorAccount returns the account that signs and pays for
	// transactions submitted through this client
	OperatorAccount() string

	// TransferHbar sends amount HBAR from the operator to toAccount and
	// waits for one confirmation. Returns the transaction reference.
	TransferHbar(ctx context.Context, toAccount string, amount decimal.Decimal) (string, error)

	// MintShares mints the given share count of the platform token and
	// delivers it to toAccount, waiting for one confirmation. Returns the
	// transaction reference of the delivering transfer.
	MintShares(ctx context.Context, toAccount string, shares decimal.Decimal) (string, error)
}
