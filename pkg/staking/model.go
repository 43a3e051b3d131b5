package staking

import "time"

// MetricsDao is a data access object that maps directly to the 'staking_metrics' table in PostgreSQL.
type MetricsDao struct {
	tableName   struct{}  `bun:"table:staking_metrics"` // nolint
	TokenSymbol string    `json:"token_symbol" bun:",pk,type:varchar(20)"`
	APY         string    `json:"apy" bun:"apy,nullzero,type:numeric(10,6)"`
	TotalStaked string    `json:"total_staked" bun:",nullzero,type:numeric(38,18)"`
	LockupDays  int       `json:"lockup_days" bun:"lockup_days,nullzero"`
	UpdatedAt   time.Time `json:"updated_at" bun:",nullzero,default:current_timestamp"`
}
