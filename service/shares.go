package service

import (
	"github.com/shopspring/decimal"

	"github.com/Rustaman254/waveUnit/models"
)

// ComputeShares converts an investment amount into hen shares at the
// configured hen price, with the promotional bonus applied on top of the
// base allocation. Shares are rounded half-up to 8 decimal places.
func ComputeShares(amountKsh, henPriceKsh, bonusRate decimal.Decimal) models.ShareBreakdown {
	base := amountKsh.DivRound(henPriceKsh, 8)
	bonus := base.Mul(bonusRate).Round(8)
	return models.ShareBreakdown{
		Base:  base,
		Bonus: bonus,
		Total: base.Add(bonus),
	}
}
