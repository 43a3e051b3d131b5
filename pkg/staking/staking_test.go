package staking

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "github.com/rwalabs/platform-middleware/pkg/app/errors"
	"github.com/rwalabs/platform-middleware/pkg/pgutil"
	mghelper "github.com/rwalabs/platform-middleware/pkg/pgutil/migrations"
)

func setupService(t *testing.T) (context.Context, *Service) {
	t.Helper()
	pgutil.RequireDockerAccess(t)

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &MetricsDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	seeds := []*MetricsDao{
		{TokenSymbol: "RWAX", APY: "0.085", TotalStaked: "1000000", LockupDays: 30},
		{TokenSymbol: "USDR", APY: "0.042", TotalStaked: "500000", LockupDays: 0},
	}
	for _, seed := range seeds {
		if _, err := db.NewInsert().Model(seed).Exec(ctx); err != nil {
			t.Fatalf("failed to seed staking_metrics: %v", err)
		}
	}

	return ctx, NewService(db)
}

func TestListMetrics(t *testing.T) {
	ctx, svc := setupService(t)

	pools, err := svc.ListMetrics(ctx)
	if err != nil {
		t.Fatalf("ListMetrics() failed: %v", err)
	}
	if len(pools) != 2 {
		t.Fatalf("expected 2 pools, got %d", len(pools))
	}

	// Ordered by symbol.
	if pools[0].TokenSymbol != "RWAX" || pools[1].TokenSymbol != "USDR" {
		t.Fatalf("unexpected pool order: %s, %s", pools[0].TokenSymbol, pools[1].TokenSymbol)
	}
	if !pools[0].APY.Equal(decimal.RequireFromString("0.085")) {
		t.Fatalf("unexpected RWAX apy: %s", pools[0].APY)
	}
	if pools[0].LockupDays != 30 {
		t.Fatalf("unexpected RWAX lockup: %d", pools[0].LockupDays)
	}
}

func TestProject_SimpleInterest(t *testing.T) {
	ctx, svc := setupService(t)

	proj, err := svc.Project(ctx, "RWAX", decimal.RequireFromString("1000"), 365)
	if err != nil {
		t.Fatalf("Project() failed: %v", err)
	}

	// 1000 * 0.085 * 365/365 = 85
	if !proj.EstimatedYield.Equal(decimal.RequireFromString("85")) {
		t.Fatalf("unexpected yield: %s", proj.EstimatedYield)
	}
	if !proj.EstimatedTotal.Equal(decimal.RequireFromString("1085")) {
		t.Fatalf("unexpected total: %s", proj.EstimatedTotal)
	}
}

func TestProject_HalfYear(t *testing.T) {
	ctx, svc := setupService(t)

	proj, err := svc.Project(ctx, "USDR", decimal.RequireFromString("200"), 73)
	if err != nil {
		t.Fatalf("Project() failed: %v", err)
	}

	// 200 * 0.042 * 73/365 = 1.68
	if !proj.EstimatedYield.Equal(decimal.RequireFromString("1.68")) {
		t.Fatalf("unexpected yield: %s", proj.EstimatedYield)
	}
}

func TestProject_Validation(t *testing.T) {
	ctx, svc := setupService(t)

	cases := []struct {
		name   string
		symbol string
		amount string
		days   int
	}{
		{"missing symbol", "", "100", 30},
		{"zero amount", "RWAX", "0", 30},
		{"negative amount", "RWAX", "-5", 30},
		{"zero days", "RWAX", "100", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Project(ctx, tc.symbol, decimal.RequireFromString(tc.amount), tc.days)
			if !apperrors.Is(err, apperrors.CategoryValidation) {
				t.Fatalf("expected CategoryValidation, got %v", err)
			}
		})
	}
}

func TestProject_UnknownPool(t *testing.T) {
	ctx, svc := setupService(t)

	_, err := svc.Project(ctx, "DOGE", decimal.RequireFromString("100"), 30)
	if !apperrors.Is(err, apperrors.CategoryNotFound) {
		t.Fatalf("expected CategoryNotFound, got %v", err)
	}
}
