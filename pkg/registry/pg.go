package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the registry store
func NewStore(db *bun.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) IsMember(ctx context.Context, list List, address string) (bool, error) {
	var exists bool
	var err error

	switch list {
	case Whitelist:
		exists, err = s.db.NewSelect().
			Model((*WhitelistEntryDao)(nil)).
			Where("address = ?", address).
			Exists(ctx)
	case Admins:
		exists, err = s.db.NewSelect().
			Model((*AdminWalletDao)(nil)).
			Where("address = ?", address).
			Exists(ctx)
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownList, list)
	}

	if err != nil {
		return false, fmt.Errorf("failed to check %s membership: %w", list, err)
	}
	return exists, nil
}

func (s *pgStore) Add(ctx context.Context, list List, address string) error {
	if list != Whitelist {
		return fmt.Errorf("%w: %s", ErrListImmutable, list)
	}

	// ON CONFLICT DO NOTHING makes repeated adds a no-op, which keeps
	// approval retries safe.
	_, err := s.db.NewInsert().
		Model(&WhitelistEntryDao{Address: address}).
		On("CONFLICT (address) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert whitelist entry: %w", err)
	}
	return nil
}

func (s *pgStore) Snapshot(ctx context.Context, list List) (*Snapshot, error) {
	switch list {
	case Whitelist:
		var daos []WhitelistEntryDao
		if err := s.db.NewSelect().Model(&daos).Order("added_at ASC").Scan(ctx); err != nil {
			return nil, fmt.Errorf("failed to list whitelist: %w", err)
		}
		snap := &Snapshot{Addresses: make([]string, len(daos)), Version: SchemaVersion}
		for i := range daos {
			snap.Addresses[i] = daos[i].Address
			snap.LastUpdated = laterOf(snap.LastUpdated, daos[i].AddedAt)
		}
		return snap, nil

	case Admins:
		var daos []AdminWalletDao
		if err := s.db.NewSelect().Model(&daos).Order("added_at ASC").Scan(ctx); err != nil {
			return nil, fmt.Errorf("failed to list admin wallets: %w", err)
		}
		snap := &Snapshot{Addresses: make([]string, len(daos)), Version: SchemaVersion}
		for i := range daos {
			snap.Addresses[i] = daos[i].Address
			snap.LastUpdated = laterOf(snap.LastUpdated, daos[i].AddedAt)
		}
		return snap, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownList, list)
	}
}

func laterOf(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
