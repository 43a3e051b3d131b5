package apidb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/rwalabs/platform-middleware/pkg/news"
	mghelper "github.com/rwalabs/platform-middleware/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating news_items table...")
		if err := mghelper.CreateSchema(ctx, db, &news.ItemDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &news.ItemDao{}, "source", "fetched_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping news_items table...")
		return mghelper.DropTables(ctx, db, &news.ItemDao{})
	})
}
