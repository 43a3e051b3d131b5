// Package service implements the whitelist application workflow: public
// submission with duplicate screening, admin review, and the approve path
// that places addresses on the whitelist.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apperrors "github.com/rwalabs/platform-middleware/pkg/app/errors"
	"github.com/rwalabs/platform-middleware/pkg/auth"
	"github.com/rwalabs/platform-middleware/pkg/registry"
	"github.com/rwalabs/platform-middleware/pkg/request"
	"github.com/rwalabs/platform-middleware/pkg/requeststore"
)

var (
	// ErrAlreadyWhitelisted signals a submission for an address that is
	// already on the whitelist.
	ErrAlreadyWhitelisted = errors.New("wallet address is already whitelisted")
	// ErrRequestPending signals a submission for an address with a request
	// still awaiting review.
	ErrRequestPending = errors.New("a request for this wallet address is already pending review")
	// ErrAlreadyProcessed signals an approve/reject against a request that
	// reached the opposite terminal status.
	ErrAlreadyProcessed = errors.New("request has already been processed")
	// ErrAddressMismatch signals an approve whose wallet address does not
	// belong to the addressed request.
	ErrAddressMismatch = errors.New("wallet address does not match the request")
)

// SubmitRequest is the payload of a public whitelist application.
type SubmitRequest struct {
	WalletAddress string `json:"walletAddress" validate:"required,eth_addr"`
	Name          string `json:"name" validate:"required,max=100"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Company       string `json:"company,omitempty" validate:"omitempty,max=100"`
	Reason        string `json:"reason" validate:"required,max=2000"`
	Experience    string `json:"experience,omitempty" validate:"omitempty,max=2000"`
}

// RequestList is the admin view of all applications.
type RequestList struct {
	Requests    []*request.Request `json:"requests"`
	LastUpdated time.Time          `json:"lastUpdated"`
	Version     string             `json:"version"`
}

// Registry is the slice of the address registry the workflow needs. The
// approve path writes the whitelist through the request store transaction,
// so the workflow only ever reads the registry.
type Registry interface {
	IsMember(ctx context.Context, list registry.List, address string) bool
}

// Service defines the whitelist request workflow operations.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// Submit records a new pending application after duplicate screening.
	Submit(ctx context.Context, req *SubmitRequest) (*request.Request, error)
	// ListRequests returns all applications, oldest first.
	ListRequests(ctx context.Context) (*RequestList, error)
	// Approve places the request's address on the whitelist and marks the
	// request approved, atomically. Retrying a completed approve succeeds;
	// approving a rejected request fails without touching the whitelist.
	Approve(ctx context.Context, requestID, walletAddress string) error
	// Reject marks a pending request rejected without touching the registry.
	Reject(ctx context.Context, requestID string) error
}

type service struct {
	store    requeststore.Store
	registry Registry
	validate *validator.Validate
	now      func() time.Time
}

// New creates the whitelist workflow service.
func New(store requeststore.Store, reg Registry) Service {
	return &service{
		store:    store,
		registry: reg,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (s *service) Submit(ctx context.Context, req *SubmitRequest) (*request.Request, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.ValidationError(err, validationMessage(err))
	}

	address := auth.NormalizeAddress(req.WalletAddress)

	if s.registry.IsMember(ctx, registry.Whitelist, address) {
		return nil, apperrors.ConflictError(ErrAlreadyWhitelisted, "this wallet address is already whitelisted")
	}

	active, err := s.store.FindActiveByAddress(ctx, address)
	if err != nil && !errors.Is(err, requeststore.ErrRequestNotFound) {
		return nil, apperrors.PersistenceError(fmt.Errorf("duplicate screening failed: %w", err))
	}
	if active != nil {
		switch active.Status {
		case request.StatusPending:
			return nil, apperrors.ConflictError(ErrRequestPending, "a request for this wallet address is already pending review")
		case request.StatusApproved:
			return nil, apperrors.ConflictError(ErrAlreadyWhitelisted, "this wallet address is already whitelisted")
		}
	}

	now := s.now().UTC()
	rec := &request.Request{
		ID:            uuid.NewString(),
		WalletAddress: address,
		Name:          req.Name,
		Email:         req.Email,
		Company:       req.Company,
		Reason:        req.Reason,
		Experience:    req.Experience,
		SubmittedAt:   now,
		UpdatedAt:     now,
		Status:        request.StatusPending,
	}
	if err := s.store.Create(ctx, rec); err != nil {
		// A concurrent submission can slip past the screening above; the
		// storage-level unique guard catches it.
		if errors.Is(err, requeststore.ErrDuplicateActive) {
			return nil, apperrors.ConflictError(ErrRequestPending, "a request for this wallet address is already pending review")
		}
		return nil, apperrors.PersistenceError(fmt.Errorf("failed to persist request: %w", err))
	}

	return rec, nil
}

func (s *service) ListRequests(ctx context.Context) (*RequestList, error) {
	reqs, err := s.store.List(ctx)
	if err != nil {
		return nil, apperrors.PersistenceError(fmt.Errorf("failed to list requests: %w", err))
	}
	last, err := s.store.LastUpdated(ctx)
	if err != nil {
		return nil, apperrors.PersistenceError(fmt.Errorf("failed to read last update time: %w", err))
	}
	return &RequestList{
		Requests:    reqs,
		LastUpdated: last,
		Version:     requeststore.SchemaVersion,
	}, nil
}

func (s *service) Approve(ctx context.Context, requestID, walletAddress string) error {
	if !auth.ValidateAddress(walletAddress) {
		return apperrors.ValidationError(nil, fmt.Sprintf("invalid wallet address %q", walletAddress))
	}
	address := auth.NormalizeAddress(walletAddress)

	rec, err := s.getRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if rec.WalletAddress != address {
		return apperrors.ValidationError(ErrAddressMismatch, "walletAddress does not match the request")
	}

	// Terminal states are settled before any write. A rejected request must
	// never reach the whitelist; a completed approve already committed the
	// whitelist entry with the status flip, so retrying is a no-op.
	switch rec.Status {
	case request.StatusApproved:
		return nil
	case request.StatusRejected:
		return apperrors.ConflictError(ErrAlreadyProcessed, "request has already been rejected")
	}

	// The status flip and the whitelist insert commit together. A concurrent
	// reject that wins the race rolls this back to nothing.
	updated, err := s.store.ApproveAndWhitelist(ctx, requestID, address)
	if err != nil {
		return apperrors.PersistenceError(fmt.Errorf("failed to approve request: %w", err))
	}
	if !updated {
		return s.resolveStaleUpdate(ctx, requestID, request.StatusApproved)
	}

	return nil
}

func (s *service) Reject(ctx context.Context, requestID string) error {
	if _, err := s.getRequest(ctx, requestID); err != nil {
		return err
	}

	updated, err := s.store.UpdateStatusFromPending(ctx, requestID, request.StatusRejected)
	if err != nil {
		return apperrors.PersistenceError(fmt.Errorf("failed to reject request: %w", err))
	}
	if !updated {
		return s.resolveStaleUpdate(ctx, requestID, request.StatusRejected)
	}

	return nil
}

func (s *service) getRequest(ctx context.Context, requestID string) (*request.Request, error) {
	if requestID == "" {
		return nil, apperrors.ValidationError(nil, "requestId is required")
	}
	rec, err := s.store.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, requeststore.ErrRequestNotFound) {
			return nil, apperrors.NotFoundError(err, "request not found")
		}
		return nil, apperrors.PersistenceError(fmt.Errorf("failed to load request: %w", err))
	}
	return rec, nil
}

// resolveStaleUpdate classifies a conditional status update that matched no
// pending row. Repeating an already-applied transition is a no-op success;
// crossing to the opposite terminal status is a conflict.
func (s *service) resolveStaleUpdate(ctx context.Context, requestID string, want request.Status) error {
	rec, err := s.getRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if rec.Status == want {
		return nil
	}
	return apperrors.ConflictError(ErrAlreadyProcessed,
		fmt.Sprintf("request has already been %s", rec.Status))
}

// validationMessage flattens a validator error into a user-facing message
// naming the first offending field.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("missing required field: %s", fieldName(fe))
		case "eth_addr":
			return "invalid wallet address format"
		case "email":
			return "invalid email address"
		default:
			return fmt.Sprintf("invalid field: %s", fieldName(fe))
		}
	}
	return "invalid request payload"
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "WalletAddress":
		return "walletAddress"
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Company":
		return "company"
	case "Reason":
		return "reason"
	case "Experience":
		return "experience"
	}
	return fe.Field()
}
