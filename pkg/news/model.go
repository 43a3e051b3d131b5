package news

import (
	"time"

	"github.com/uptrace/bun"
)

// ItemDao is a data access object that maps directly to the 'news_items' table in PostgreSQL.
type ItemDao struct {
	bun.BaseModel `bun:"table:news_items,alias:ni"`
	ID            string    `bun:"id,pk,type:varchar(36)"`
	Source        string    `bun:"source,notnull,type:varchar(64)"`
	Title         string    `bun:"title,notnull,type:text"`
	URL           string    `bun:"url,notnull,type:text"`
	Summary       *string   `bun:"summary,type:text"`
	PublishedAt   time.Time `bun:"published_at,notnull"`
	FetchedAt     time.Time `bun:"fetched_at,nullzero,default:current_timestamp"`
}

func toItemDao(item *Item) *ItemDao {
	dao := &ItemDao{
		ID:          item.ID,
		Source:      item.Source,
		Title:       item.Title,
		URL:         item.URL,
		PublishedAt: item.PublishedAt,
		FetchedAt:   item.FetchedAt,
	}
	if item.Summary != "" {
		dao.Summary = &item.Summary
	}
	return dao
}

func toItem(dao *ItemDao) *Item {
	item := &Item{
		ID:          dao.ID,
		Source:      dao.Source,
		Title:       dao.Title,
		URL:         dao.URL,
		PublishedAt: dao.PublishedAt,
		FetchedAt:   dao.FetchedAt,
	}
	if dao.Summary != nil {
		item.Summary = *dao.Summary
	}
	return item
}
