package news

import (
	"context"
	"time"
)

// mockStore is a func-field fake of Store for service tests.
type mockStore struct {
	ReplaceFunc       func(ctx context.Context, source string, items []*Item) error
	ListFreshFunc     func(ctx context.Context, maxAge time.Duration) ([]*Item, error)
	DeleteExpiredFunc func(ctx context.Context, maxAge time.Duration) (int64, error)
	PurgeFunc         func(ctx context.Context) (int64, error)
}

func (m *mockStore) Replace(ctx context.Context, source string, items []*Item) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, source, items)
	}
	return nil
}

func (m *mockStore) ListFresh(ctx context.Context, maxAge time.Duration) ([]*Item, error) {
	if m.ListFreshFunc != nil {
		return m.ListFreshFunc(ctx, maxAge)
	}
	return nil, nil
}

func (m *mockStore) DeleteExpired(ctx context.Context, maxAge time.Duration) (int64, error) {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx, maxAge)
	}
	return 0, nil
}

func (m *mockStore) Purge(ctx context.Context) (int64, error) {
	if m.PurgeFunc != nil {
		return m.PurgeFunc(ctx)
	}
	return 0, nil
}
