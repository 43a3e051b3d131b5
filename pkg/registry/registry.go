// Package registry implements the address registry: named lists of wallet
// addresses (the whitelist and the admin list) backed by PostgreSQL.
//
// Addresses are stored and compared in lowercase; display casing is the
// caller's concern.
package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/rwalabs/platform-middleware/pkg/app/errors"
	"github.com/rwalabs/platform-middleware/pkg/auth"
)

// SchemaVersion tags registry snapshots for forward-compatible evolution.
const SchemaVersion = "1.0.0"

// List names a registry list.
type List string

const (
	// Whitelist is the list of addresses permitted to use the protected app.
	Whitelist List = "whitelist"
	// Admins is the list of addresses permitted to approve/reject requests.
	// It is managed externally (seeded by operators), never mutated here.
	Admins List = "admins"
)

// ErrUnknownList is returned when a list name is not recognized.
var ErrUnknownList = errors.New("unknown registry list")

// ErrListImmutable is returned on attempts to mutate the admin list.
var ErrListImmutable = errors.New("admin list is managed externally")

// Snapshot is a point-in-time view of one list.
type Snapshot struct {
	Addresses   []string  `json:"addresses"`
	LastUpdated time.Time `json:"lastUpdated"`
	Version     string    `json:"version"`
}

// Store defines the persistence contract for registry lists.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	IsMember(ctx context.Context, list List, address string) (bool, error)
	Add(ctx context.Context, list List, address string) error
	Snapshot(ctx context.Context, list List) (*Snapshot, error)
}

// Registry wraps a Store with the gate-facing semantics: membership checks
// fail closed and write failures surface as retryable persistence errors.
type Registry struct {
	store  Store
	logger *zap.Logger
}

// New creates a Registry over the given store.
func New(store Store, logger *zap.Logger) *Registry {
	return &Registry{store: store, logger: logger}
}

// IsMember reports membership of address in list. It fails closed: a
// malformed address or a storage failure yields false, never an error.
func (r *Registry) IsMember(ctx context.Context, list List, address string) bool {
	if !auth.ValidateAddress(address) {
		return false
	}
	member, err := r.store.IsMember(ctx, list, auth.NormalizeAddress(address))
	if err != nil {
		r.logger.Error("registry lookup failed, denying",
			zap.String("list", string(list)),
			zap.Error(err),
		)
		return false
	}
	return member
}

// IsAdmin implements auth.AdminDirectory.
func (r *Registry) IsAdmin(ctx context.Context, address string) bool {
	return r.IsMember(ctx, Admins, address)
}

// Add appends address to list. Adding an existing member is a no-op, not an
// error. Only the whitelist is mutable through this path.
func (r *Registry) Add(ctx context.Context, list List, address string) error {
	if list != Whitelist {
		return apperrors.ForbiddenError(ErrListImmutable, "admin list is managed externally")
	}
	if !auth.ValidateAddress(address) {
		return apperrors.ValidationError(nil, fmt.Sprintf("invalid wallet address %q", address))
	}
	if err := r.store.Add(ctx, list, auth.NormalizeAddress(address)); err != nil {
		return apperrors.PersistenceError(fmt.Errorf("failed to add to %s: %w", list, err))
	}
	return nil
}

// Snapshot returns the current content of list.
func (r *Registry) Snapshot(ctx context.Context, list List) (*Snapshot, error) {
	snap, err := r.store.Snapshot(ctx, list)
	if err != nil {
		return nil, apperrors.PersistenceError(fmt.Errorf("failed to load %s: %w", list, err))
	}
	return snap, nil
}
