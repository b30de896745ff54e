package service

import (
	"github.com/shopspring/decimal"

	"github.com/Rustaman254/waveUnit/models"
)

// ClassifyTier maps a cumulative invested amount to its investor tier.
// Band boundaries are inclusive on the upper edge of the lower band, so
// exactly 1000 KSh is still Starter and exactly 5000 KSh is still Bronze.
func ClassifyTier(totalInvestedKsh decimal.Decimal, rates models.TierRates) models.Tier {
	var name models.TierName
	switch {
	case totalInvestedKsh.LessThanOrEqual(decimal.NewFromInt(1000)):
		name = models.TierStarter
	case totalInvestedKsh.LessThanOrEqual(decimal.NewFromInt(5000)):
		name = models.TierBronze
	case totalInvestedKsh.LessThanOrEqual(decimal.NewFromInt(20000)):
		name = models.TierSilver
	default:
		name = models.TierGold
	}

	return models.Tier{Name: name, DailyRatePercent: rates.Rate(name)}
}
