// Package staking exposes read-only staking pool metrics and a simple
// yield projection. Rates are operator-seeded; nothing here talks to a
// chain.
package staking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	apperrors "github.com/rwalabs/platform-middleware/pkg/app/errors"
)

// PoolMetrics is the public view of one staking pool.
type PoolMetrics struct {
	TokenSymbol string          `json:"tokenSymbol"`
	APY         decimal.Decimal `json:"apy"`
	TotalStaked decimal.Decimal `json:"totalStaked"`
	LockupDays  int             `json:"lockupDays"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Projection is the simple-interest yield estimate for one stake.
type Projection struct {
	TokenSymbol    string          `json:"tokenSymbol"`
	Amount         decimal.Decimal `json:"amount"`
	Days           int             `json:"days"`
	APY            decimal.Decimal `json:"apy"`
	EstimatedYield decimal.Decimal `json:"estimatedYield"`
	EstimatedTotal decimal.Decimal `json:"estimatedTotal"`
}

var daysPerYear = decimal.NewFromInt(365)

// Service reads staking metrics from PostgreSQL.
type Service struct {
	db *bun.DB
}

// NewService creates the staking metrics service.
func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

// ListMetrics returns metrics for every seeded pool.
func (s *Service) ListMetrics(ctx context.Context) ([]*PoolMetrics, error) {
	var daos []MetricsDao
	err := s.db.NewSelect().
		Model(&daos).
		Order("token_symbol ASC").
		Scan(ctx)
	if err != nil {
		return nil, apperrors.PersistenceError(fmt.Errorf("failed to load staking metrics: %w", err))
	}

	pools := make([]*PoolMetrics, 0, len(daos))
	for i := range daos {
		pool, err := toPoolMetrics(&daos[i])
		if err != nil {
			return nil, apperrors.GeneralError(err)
		}
		pools = append(pools, pool)
	}
	return pools, nil
}

// Project estimates the yield of staking amount of symbol for days days,
// using simple interest on the pool's current APY.
func (s *Service) Project(ctx context.Context, symbol string, amount decimal.Decimal, days int) (*Projection, error) {
	if symbol == "" {
		return nil, apperrors.ValidationError(nil, "symbol is required")
	}
	if amount.IsNegative() || amount.IsZero() {
		return nil, apperrors.ValidationError(nil, "amount must be positive")
	}
	if days <= 0 {
		return nil, apperrors.ValidationError(nil, "days must be positive")
	}

	dao := new(MetricsDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("token_symbol = ?", symbol).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError(err, fmt.Sprintf("unknown staking pool %q", symbol))
		}
		return nil, apperrors.PersistenceError(fmt.Errorf("failed to load staking pool: %w", err))
	}

	apy, err := decimal.NewFromString(dao.APY)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("malformed apy for %s: %w", symbol, err))
	}

	// yield = amount * apy * days/365, simple interest
	yield := amount.Mul(apy).Mul(decimal.NewFromInt(int64(days))).Div(daysPerYear).Round(18)

	return &Projection{
		TokenSymbol:    dao.TokenSymbol,
		Amount:         amount,
		Days:           days,
		APY:            apy,
		EstimatedYield: yield,
		EstimatedTotal: amount.Add(yield),
	}, nil
}

func toPoolMetrics(dao *MetricsDao) (*PoolMetrics, error) {
	apy, err := decimal.NewFromString(dao.APY)
	if err != nil {
		return nil, fmt.Errorf("malformed apy for %s: %w", dao.TokenSymbol, err)
	}
	staked, err := decimal.NewFromString(dao.TotalStaked)
	if err != nil {
		return nil, fmt.Errorf("malformed total_staked for %s: %w", dao.TokenSymbol, err)
	}
	return &PoolMetrics{
		TokenSymbol: dao.TokenSymbol,
		APY:         apy,
		TotalStaked: staked,
		LockupDays:  dao.LockupDays,
		UpdatedAt:   dao.UpdatedAt,
	}, nil
}
