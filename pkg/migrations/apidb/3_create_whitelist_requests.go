package apidb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/rwalabs/platform-middleware/pkg/pgutil/migrations"
	"github.com/rwalabs/platform-middleware/pkg/requeststore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating whitelist_requests table...")
		if err := mghelper.CreateSchema(ctx, db, &requeststore.RequestDao{}); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &requeststore.RequestDao{}, "wallet_address", "status"); err != nil {
			return err
		}
		// One active (pending or approved) request per address.
		_, err := db.ExecContext(ctx, requeststore.ActiveRequestIndex)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping whitelist_requests table...")
		return mghelper.DropTables(ctx, db, &requeststore.RequestDao{})
	})
}
