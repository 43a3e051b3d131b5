package apidb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/rwalabs/platform-middleware/pkg/pgutil/migrations"
	"github.com/rwalabs/platform-middleware/pkg/registry"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating admin_wallets table...")
		return mghelper.CreateSchema(ctx, db, &registry.AdminWalletDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping admin_wallets table...")
		return mghelper.DropTables(ctx, db, &registry.AdminWalletDao{})
	})
}
