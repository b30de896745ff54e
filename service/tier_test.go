package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Rustaman254/waveUnit/models"
)

func TestClassifyTier_Bands(t *testing.T) {
	rates := models.DefaultTierRates()

	tests := []struct {
		name     string
		invested string
		want     models.TierName
		wantRate string
	}{
		{"zero is starter", "0", models.TierStarter, "0.10"},
		{"mid starter band", "500", models.TierStarter, "0.10"},
		{"exactly 1000 is still starter", "1000", models.TierStarter, "0.10"},
		{"just above 1000 is bronze", "1000.01", models.TierBronze, "0.15"},
		{"mid bronze band", "3000", models.TierBronze, "0.15"},
		{"exactly 5000 is still bronze", "5000", models.TierBronze, "0.15"},
		{"just above 5000 is silver", "5000.01", models.TierSilver, "0.20"},
		{"mid silver band", "12000", models.TierSilver, "0.20"},
		{"exactly 20000 is still silver", "20000", models.TierSilver, "0.20"},
		{"just above 20000 is gold", "20000.01", models.TierGold, "0.25"},
		{"large amount is gold", "1000000", models.TierGold, "0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := ClassifyTier(decimal.RequireFromString(tt.invested), rates)
			assert.Equal(t, tt.want, tier.Name)
			assert.True(t, tier.DailyRatePercent.Equal(decimal.RequireFromString(tt.wantRate)),
				"rate %s, want %s", tier.DailyRatePercent, tt.wantRate)
		})
	}
}

func TestClassifyTier_CustomRates(t *testing.T) {
	rates := models.TierRates{
		Starter: decimal.RequireFromString("0.12"),
		Bronze:  decimal.RequireFromString("0.18"),
		Silver:  decimal.RequireFromString("0.22"),
		Gold:    decimal.RequireFromString("0.30"),
	}

	tier := ClassifyTier(decimal.NewFromInt(6000), rates)

	assert.Equal(t, models.TierSilver, tier.Name)
	assert.True(t, tier.DailyRatePercent.Equal(decimal.RequireFromString("0.22")))
}

func TestClassifyTier_Deterministic(t *testing.T) {
	rates := models.DefaultTierRates()
	amount := decimal.RequireFromString("4999.99")

	first := ClassifyTier(amount, rates)
	second := ClassifyTier(amount, rates)

	assert.Equal(t, first, second)
}
