package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DistributionRun represents one daily profit distribution execution
type DistributionRun struct {
	ID                  int64                  `db:"id"`
	RunDate             time.Time              `db:"run_date"`
	TotalDistributedKsh decimal.Decimal        `db:"total_distributed_ksh"`
	ProfilesPaid        int                    `db:"profiles_paid"`
	ExecutionSummary    map[string]interface{} `db:"execution_summary"`
	CreatedAt           time.Time              `db:"created_at"`
}

// ProfitDistribution is one profile's share of a daily distribution run
type ProfitDistribution struct {
	ID                   uuid.UUID       `db:"id"`
	RunID                int64           `db:"run_id"`
	ProfileID            uuid.UUID       `db:"profile_id"`
	AmountKsh            decimal.Decimal `db:"amount_ksh"`
	SharesAtDistribution decimal.Decimal `db:"shares_at_distribution"`
	Tier                 TierName        `db:"tier"`
	DailyRate            decimal.Decimal `db:"daily_rate"`
	DistributedAt        time.Time       `db:"distributed_at"`
	CreatedAt            time.Time       `db:"created_at"`
}
