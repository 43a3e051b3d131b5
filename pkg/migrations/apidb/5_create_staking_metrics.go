package apidb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/rwalabs/platform-middleware/pkg/pgutil/migrations"
	"github.com/rwalabs/platform-middleware/pkg/staking"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating staking_metrics table...")
		return mghelper.CreateSchema(ctx, db, &staking.MetricsDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping staking_metrics table...")
		return mghelper.DropTables(ctx, db, &staking.MetricsDao{})
	})
}
