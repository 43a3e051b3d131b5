package requeststore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/rwalabs/platform-middleware/pkg/registry"
	"github.com/rwalabs/platform-middleware/pkg/request"
)

// ActiveRequestIndex enforces at most one pending or approved request per
// wallet address at the storage level. Partial indexes cannot be declared
// through bun model tags, so migrations and test setups create it from
// this DDL.
const ActiveRequestIndex = `CREATE UNIQUE INDEX IF NOT EXISTS uq_whitelist_requests_active ` +
	`ON whitelist_requests (wallet_address) WHERE status IN ('pending', 'approved')`

const pgUniqueViolation = "23505"

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the request store
func NewStore(db *bun.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) Create(ctx context.Context, req *request.Request) error {
	_, err := s.db.NewInsert().
		Model(toRequestDao(req)).
		Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation {
			return ErrDuplicateActive
		}
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

func (s *pgStore) List(ctx context.Context) ([]*request.Request, error) {
	var daos []RequestDao
	err := s.db.NewSelect().
		Model(&daos).
		Order("submitted_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	reqs := make([]*request.Request, len(daos))
	for i := range daos {
		reqs[i] = toRequest(&daos[i])
	}
	return reqs, nil
}

func (s *pgStore) GetByID(ctx context.Context, id string) (*request.Request, error) {
	dao := new(RequestDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return toRequest(dao), nil
}

func (s *pgStore) FindActiveByAddress(ctx context.Context, address string) (*request.Request, error) {
	dao := new(RequestDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("wallet_address = ?", address).
		Where("status IN (?)", bun.In([]string{string(request.StatusPending), string(request.StatusApproved)})).
		Order("submitted_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to find active request: %w", err)
	}
	return toRequest(dao), nil
}

func (s *pgStore) UpdateStatusFromPending(ctx context.Context, id string, to request.Status) (bool, error) {
	if !to.Terminal() {
		return false, fmt.Errorf("invalid target status %q", to)
	}

	res, err := s.db.NewUpdate().
		Model((*RequestDao)(nil)).
		Set("status = ?", string(to)).
		Set("updated_at = NOW()").
		Where("id = ?", id).
		Where("status = ?", string(request.StatusPending)).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update request status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected == 1, nil
}

func (s *pgStore) ApproveAndWhitelist(ctx context.Context, id, address string) (bool, error) {
	var updated bool
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*RequestDao)(nil)).
			Set("status = ?", string(request.StatusApproved)).
			Set("updated_at = NOW()").
			Where("id = ?", id).
			Where("status = ?", string(request.StatusPending)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to approve request: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read rows affected: %w", err)
		}
		if affected == 0 {
			// Not pending anymore; commit nothing.
			return nil
		}

		if _, err := tx.NewInsert().
			Model(&registry.WhitelistEntryDao{Address: address}).
			On("CONFLICT (address) DO NOTHING").
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to whitelist address: %w", err)
		}
		updated = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

func (s *pgStore) LastUpdated(ctx context.Context) (time.Time, error) {
	var last sql.NullTime
	err := s.db.NewSelect().
		Model((*RequestDao)(nil)).
		ColumnExpr("MAX(updated_at)").
		Scan(ctx, &last)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read last update time: %w", err)
	}
	if !last.Valid {
		return time.Time{}, nil
	}
	return last.Time, nil
}
