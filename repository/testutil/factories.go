package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Rustaman254/waveUnit/models"
)

// CreateTestProfile creates a profile with default values
func CreateTestProfile(fullName string) *models.Profile {
	return &models.Profile{
		FullName:    fullName,
		Email:       fullName + "@example.com",
		PhoneNumber: "+254700000000",
		KYCStatus:   models.KYCStatusPending,
		Role:        models.RoleInvestor,
	}
}

// CreateTestInvestment creates a completed investment for a profile
func CreateTestInvestment(profileID uuid.UUID, amountKsh int64) *models.Investment {
	amount := decimal.NewFromInt(amountKsh)
	base := amount.DivRound(decimal.NewFromInt(700), 8)
	bonus := base.Mul(decimal.RequireFromString("0.05")).Round(8)
	paymentTx := "0.0.1001@1700000000.000000001"
	mintTx := "0.0.1001@1700000000.000000002"

	return &models.Investment{
		ProfileID:     profileID,
		AmountKsh:     amount,
		BaseShares:    base,
		BonusShares:   bonus,
		TotalShares:   base.Add(bonus),
		PaymentMethod: models.PaymentMethodHbar,
		PaymentTxID:   &paymentTx,
		MintTxID:      &mintTx,
		LockedUntil:   time.Now().UTC().Add(3 * 24 * time.Hour),
		Status:        models.InvestmentStatusCompleted,
	}
}

// CreateTestDistributionRun creates a distribution run for a date
func CreateTestDistributionRun(date time.Time) *models.DistributionRun {
	return &models.DistributionRun{
		RunDate:             date,
		TotalDistributedKsh: decimal.RequireFromString("125.50"),
		ProfilesPaid:        3,
		ExecutionSummary: map[string]interface{}{
			"profiles_checked": 5,
			"profiles_paid":    3,
		},
	}
}

// CreateTestWithdrawal creates a pending withdrawal for a profile
func CreateTestWithdrawal(profileID uuid.UUID, amountKsh int64) *models.Withdrawal {
	return &models.Withdrawal{
		ProfileID:   profileID,
		AmountKsh:   decimal.NewFromInt(amountKsh),
		Method:      models.WithdrawalMethodMpesa,
		Destination: "+254700000000",
		Status:      models.WithdrawalStatusPending,
	}
}
