package ledger

import (
	"context"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// The share token is created with two decimal places, so one share is
// represented by 100 base units on chain.
const shareTokenDecimals = 2

// HederaClient implements Client on top of the Hedera SDK
type HederaClient struct {
	client   *hedera.Client
	operator hedera.AccountID
	tokenID  hedera.TokenID
}

// HederaConfig holds the parameters needed to talk to the Hedera network
type HederaConfig struct {
	Network     string // "testnet" or "mainnet"
	OperatorID  string
	OperatorKey string
	TokenID     string
}

// NewHederaClient creates a ledger client for the configured network with
// the operator account as signer and fee payer
func NewHederaClient(cfg HederaConfig) (*HederaClient, error) {
	var client *hedera.Client
	if cfg.Network == "mainnet" {
		client = hedera.ClientForMainnet()
	} else {
		client = hedera.ClientForTestnet()
	}

	operator, err := hedera.AccountIDFromString(cfg.OperatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse operator account ID %q: %w", cfg.OperatorID, err)
	}

	key, err := hedera.PrivateKeyFromString(cfg.OperatorKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse operator key: %w", err)
	}

	tokenID, err := hedera.TokenIDFromString(cfg.TokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse share token ID %q: %w", cfg.TokenID, err)
	}

	client.SetOperator(operator, key)

	return &HederaClient{
		client:   client,
		operator: operator,
		tokenID:  tokenID,
	}, nil
}

// OperatorAccount returns the signer identity of this client
func (c *HederaClient) OperatorAccount() string {
	return c.operator.String()
}

// TransferHbar sends amount HBAR to toAccount and waits for the receipt
func (c *HederaClient) TransferHbar(ctx context.Context, toAccount string, amount decimal.Decimal) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	to, err := hedera.AccountIDFromString(toAccount)
	if err != nil {
		return "", fmt.Errorf("failed to parse destination account %q: %w", toAccount, err)
	}

	hbar, _ := amount.Round(8).Float64()

	resp, err := hedera.NewTransferTransaction().
		AddHbarTransfer(c.operator, hedera.NewHbar(-hbar)).
		AddHbarTransfer(to, hedera.NewHbar(hbar)).
		Execute(c.client)
	if err != nil {
		return "", fmt.Errorf("failed to submit HBAR transfer: %w", err)
	}

	receipt, err := resp.GetReceipt(c.client)
	if err != nil {
		return "", fmt.Errorf("failed to get HBAR transfer receipt: %w", err)
	}
	if receipt.Status != hedera.StatusSuccess {
		return "", fmt.Errorf("HBAR transfer not confirmed: %s", receipt.Status)
	}

	txID := resp.TransactionID.String()
	log.WithFields(log.Fields{
		"to":     toAccount,
		"amount": amount.String(),
		"txId":   txID,
	}).Info("HBAR transfer confirmed")

	return txID, nil
}

// MintShares mints shares of the platform token and transfers them to
// toAccount, waiting for both receipts
func (c *HederaClient) MintShares(ctx context.Context, toAccount string, shares decimal.Decimal) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	to, err := hedera.AccountIDFromString(toAccount)
	if err != nil {
		return "", fmt.Errorf("failed to parse destination account %q: %w", toAccount, err)
	}

	units := shares.Shift(shareTokenDecimals).Round(0).IntPart()
	if units <= 0 {
		return "", fmt.Errorf("share amount %s is below one token unit", shares)
	}

	mintResp, err := hedera.NewTokenMintTransaction().
		SetTokenID(c.tokenID).
		SetAmount(uint64(units)).
		Execute(c.client)
	if err != nil {
		return "", fmt.Errorf("failed to submit token mint: %w", err)
	}

	mintReceipt, err := mintResp.GetReceipt(c.client)
	if err != nil {
		return "", fmt.Errorf("failed to get token mint receipt: %w", err)
	}
	if mintReceipt.Status != hedera.StatusSuccess {
		return "", fmt.Errorf("token mint not confirmed: %s", mintReceipt.Status)
	}

	xferResp, err := hedera.NewTransferTransaction().
		AddTokenTransfer(c.tokenID, c.operator, -units).
		AddTokenTransfer(c.tokenID, to, units).
		Execute(c.client)
	if err != nil {
		return "", fmt.Errorf("failed to submit token transfer: %w", err)
	}

	xferReceipt, err := xferResp.GetReceipt(c.client)
	if err != nil {
		return "", fmt.Errorf("failed to get token transfer receipt: %w", err)
	}
	if xferReceipt.Status != hedera.StatusSuccess {
		return "", fmt.Errorf("token transfer not confirmed: %s", xferReceipt.Status)
	}

	txID := xferResp.TransactionID.String()
	log.WithFields(log.Fields{
		"to":     toAccount,
		"shares": shares.String(),
		"txId":   txID,
	}).Info("Share tokens minted and delivered")

	return txID, nil
}
