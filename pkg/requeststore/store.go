// Package requeststore persists whitelist applications in PostgreSQL.
package requeststore

import (
	"context"
	"errors"
	"time"

	"github.com/rwalabs/platform-middleware/pkg/request"
)

// SchemaVersion tags request collection payloads.
const SchemaVersion = "1.0.0"

// ErrRequestNotFound is returned when a request lookup finds no matching record.
var ErrRequestNotFound = errors.New("request not found")

// ErrDuplicateActive is returned when an insert collides with an existing
// pending or approved request for the same address.
var ErrDuplicateActive = errors.New("an active request for this wallet address already exists")

// Store defines the persistence contract for whitelist requests.
//
// Status changes go through UpdateStatusFromPending, a conditional update
// guarded on the current status. That removes the read-modify-write race
// between concurrent approve/reject calls on the same request: exactly one
// caller observes updated=true.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	// Create inserts a new request. A partial unique index on the table
	// backs the one-active-request-per-address invariant; colliding with it
	// returns ErrDuplicateActive.
	Create(ctx context.Context, req *request.Request) error
	List(ctx context.Context) ([]*request.Request, error)
	GetByID(ctx context.Context, id string) (*request.Request, error)
	// FindActiveByAddress returns the pending or approved request for the
	// given normalized address, or ErrRequestNotFound.
	FindActiveByAddress(ctx context.Context, address string) (*request.Request, error)
	// UpdateStatusFromPending flips a pending request to the given terminal
	// status. Returns false when the request was not pending (or absent).
	UpdateStatusFromPending(ctx context.Context, id string, to request.Status) (bool, error)
	// ApproveAndWhitelist flips a pending request to approved and inserts
	// the address into the whitelist in one transaction. Returns false, with
	// nothing written, when the request was not pending (or absent).
	ApproveAndWhitelist(ctx context.Context, id, address string) (bool, error)
	// LastUpdated returns the newest status-change timestamp across all
	// requests; zero time when the store is empty.
	LastUpdated(ctx context.Context) (time.Time, error)
}
