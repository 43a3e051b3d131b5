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
		log.Println("creating whitelist table...")
		return mghelper.CreateSchema(ctx, db, &registry.WhitelistEntryDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping whitelist table...")
		return mghelper.DropTables(ctx, db, &registry.WhitelistEntryDao{})
	})
}
