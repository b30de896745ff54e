package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlatformSettings is the singleton configuration row for the platform
type PlatformSettings struct {
	ID                 int             `db:"id"`
	HenPriceKsh        decimal.Decimal `db:"hen_price_ksh"`
	TotalHens          int             `db:"total_hens"`
	DailyEggProduction int             `db:"daily_egg_production"`
	TierRates          TierRates       `db:"-"`
	KshToHbarRate      decimal.Decimal `db:"ksh_to_hbar_rate"`
	HensTokenID        *string         `db:"hens_token_id"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}
