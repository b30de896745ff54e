package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransparencyReport is a weekly operational report published for investors
type TransparencyReport struct {
	ID                uuid.UUID       `db:"id"`
	WeekStartDate     time.Time       `db:"week_start_date"`
	TotalHens         int             `db:"total_hens"`
	EggsProduced      int             `db:"eggs_produced"`
	RevenueKsh        decimal.Decimal `db:"revenue_ksh"`
	OperatingCostsKsh decimal.Decimal `db:"operating_costs_ksh"`
	FeedCostKsh       decimal.Decimal `db:"feed_cost_ksh"`
	LaborCostKsh      decimal.Decimal `db:"labor_cost_ksh"`
	OtherCostsKsh     decimal.Decimal `db:"other_costs_ksh"`
	NetProfitKsh      decimal.Decimal `db:"net_profit_ksh"`
	Photos            []string        `db:"photos"`
	Notes             *string         `db:"notes"`
	PublishedAt       time.Time       `db:"published_at"`
	CreatedAt         time.Time       `db:"created_at"`
}
