package news

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Store defines the persistence contract for cached news.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	// Replace swaps the cached items of one source in a single transaction.
	Replace(ctx context.Context, source string, items []*Item) error
	// ListFresh returns items fetched within maxAge, newest published first.
	ListFresh(ctx context.Context, maxAge time.Duration) ([]*Item, error)
	// DeleteExpired removes items fetched before the cutoff and reports how
	// many were removed.
	DeleteExpired(ctx context.Context, maxAge time.Duration) (int64, error)
	// Purge drops the whole cache.
	Purge(ctx context.Context) (int64, error)
}

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the news store
func NewStore(db *bun.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) Replace(ctx context.Context, source string, items []*Item) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*ItemDao)(nil)).
			Where("source = ?", source).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear source %s: %w", source, err)
		}

		if len(items) == 0 {
			return nil
		}

		daos := make([]*ItemDao, len(items))
		for i, item := range items {
			daos[i] = toItemDao(item)
		}
		if _, err := tx.NewInsert().Model(&daos).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert items for source %s: %w", source, err)
		}
		return nil
	})
}

func (s *pgStore) ListFresh(ctx context.Context, maxAge time.Duration) ([]*Item, error) {
	var daos []ItemDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("fetched_at > ?", time.Now().Add(-maxAge)).
		Order("published_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list news items: %w", err)
	}
	items := make([]*Item, len(daos))
	for i := range daos {
		items[i] = toItem(&daos[i])
	}
	return items, nil
}

func (s *pgStore) DeleteExpired(ctx context.Context, maxAge time.Duration) (int64, error) {
	res, err := s.db.NewDelete().
		Model((*ItemDao)(nil)).
		Where("fetched_at <= ?", time.Now().Add(-maxAge)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired items: %w", err)
	}
	return res.RowsAffected()
}

func (s *pgStore) Purge(ctx context.Context) (int64, error) {
	res, err := s.db.NewDelete().
		Model((*ItemDao)(nil)).
		Where("TRUE").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge news cache: %w", err)
	}
	return res.RowsAffected()
}
