package apidb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/rwalabs/platform-middleware/pkg/staking"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("seeding staking_metrics table...")

		seeds := []*staking.MetricsDao{
			{TokenSymbol: "RWAX", APY: "0.085", TotalStaked: "0", LockupDays: 30},
			{TokenSymbol: "USDR", APY: "0.042", TotalStaked: "0", LockupDays: 0},
		}
		for _, seed := range seeds {
			_, err := db.NewInsert().
				Model(seed).
				On("CONFLICT (token_symbol) DO NOTHING").
				Exec(ctx)
			if err != nil {
				return err
			}
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("removing seed data from staking_metrics table...")
		_, err := db.NewDelete().
			Model((*staking.MetricsDao)(nil)).
			Where("token_symbol IN ('RWAX', 'USDR')").
			Exec(ctx)
		return err
	})
}
