package models

import (
	"github.com/shopspring/decimal"
)

// TierName identifies an investment tier band
type TierName string

const (
	TierStarter TierName = "starter"
	TierBronze  TierName = "bronze"
	TierSilver  TierName = "silver"
	TierGold    TierName = "gold"
)

// Tier is a derived classification of a cumulative invested amount.
// DailyRatePercent is a percentage, e.g. 0.15 means 0.15% per day.
type Tier struct {
	Name             TierName
	DailyRatePercent decimal.Decimal
}

// TierRates holds the configurable daily rate for each band
type TierRates struct {
	Starter decimal.Decimal
	Bronze  decimal.Decimal
	Silver  decimal.Decimal
	Gold    decimal.Decimal
}

// Rate returns the daily rate for a tier name
func (r TierRates) Rate(name TierName) decimal.Decimal {
	switch name {
	case TierBronze:
		return r.Bronze
	case TierSilver:
		return r.Silver
	case TierGold:
		return r.Gold
	default:
		return r.Starter
	}
}

// DefaultTierRates returns the launch daily rates for each band
func DefaultTierRates() TierRates {
	return TierRates{
		Starter: decimal.RequireFromString("0.10"),
		Bronze:  decimal.RequireFromString("0.15"),
		Silver:  decimal.RequireFromString("0.20"),
		Gold:    decimal.RequireFromString("0.25"),
	}
}
