package requeststore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/rwalabs/platform-middleware/pkg/pgutil"
	mghelper "github.com/rwalabs/platform-middleware/pkg/pgutil/migrations"
	"github.com/rwalabs/platform-middleware/pkg/registry"
	"github.com/rwalabs/platform-middleware/pkg/request"
)

func setupDB(t *testing.T) (context.Context, *bun.DB) {
	t.Helper()
	pgutil.RequireDockerAccess(t)

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &RequestDao{}, &registry.WhitelistEntryDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	if _, err := db.ExecContext(ctx, ActiveRequestIndex); err != nil {
		t.Fatalf("failed to create active request index: %v", err)
	}

	return ctx, db
}

func setupStore(t *testing.T) (context.Context, Store) {
	t.Helper()
	ctx, db := setupDB(t)
	return ctx, NewStore(db)
}

func newTestRequest(address string) *request.Request {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &request.Request{
		ID:            uuid.NewString(),
		WalletAddress: address,
		Name:          "Alice Example",
		Email:         "alice@example.com",
		Company:       "Example Capital",
		Reason:        "early access to tokenized treasuries",
		SubmittedAt:   now,
		UpdatedAt:     now,
		Status:        request.StatusPending,
	}
}

func TestRequestPGStore_CreateAndGet(t *testing.T) {
	ctx, s := setupStore(t)

	want := newTestRequest("0x1111111111111111111111111111111111111111")
	if err := s.Create(ctx, want); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	got, err := s.GetByID(ctx, want.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got.WalletAddress != want.WalletAddress {
		t.Fatalf("wallet address mismatch: got %s want %s", got.WalletAddress, want.WalletAddress)
	}
	if got.Company != want.Company {
		t.Fatalf("company mismatch: got %q want %q", got.Company, want.Company)
	}
	if got.Experience != "" {
		t.Fatalf("expected empty experience, got %q", got.Experience)
	}
	if got.Status != request.StatusPending {
		t.Fatalf("expected pending, got %s", got.Status)
	}
}

func TestRequestPGStore_GetByID_NotFound(t *testing.T) {
	ctx, s := setupStore(t)

	_, err := s.GetByID(ctx, uuid.NewString())
	if !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestRequestPGStore_List_InsertionOrder(t *testing.T) {
	ctx, s := setupStore(t)

	first := newTestRequest("0x1111111111111111111111111111111111111111")
	second := newTestRequest("0x2222222222222222222222222222222222222222")
	second.SubmittedAt = first.SubmittedAt.Add(time.Second)

	for _, req := range []*request.Request{first, second} {
		if err := s.Create(ctx, req); err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Fatal("requests not in submission order")
	}
}

func TestRequestPGStore_FindActiveByAddress(t *testing.T) {
	ctx, s := setupStore(t)
	address := "0x3333333333333333333333333333333333333333"

	if _, err := s.FindActiveByAddress(ctx, address); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}

	req := newTestRequest(address)
	if err := s.Create(ctx, req); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	got, err := s.FindActiveByAddress(ctx, address)
	if err != nil {
		t.Fatalf("FindActiveByAddress() failed: %v", err)
	}
	if got.ID != req.ID {
		t.Fatalf("id mismatch: got %s want %s", got.ID, req.ID)
	}

	// A rejected request is not active.
	if _, err := s.UpdateStatusFromPending(ctx, req.ID, request.StatusRejected); err != nil {
		t.Fatalf("UpdateStatusFromPending() failed: %v", err)
	}
	if _, err := s.FindActiveByAddress(ctx, address); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("rejected request should not be active, got %v", err)
	}
}

func TestRequestPGStore_UpdateStatusFromPending(t *testing.T) {
	ctx, s := setupStore(t)

	req := newTestRequest("0x4444444444444444444444444444444444444444")
	if err := s.Create(ctx, req); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	updated, err := s.UpdateStatusFromPending(ctx, req.ID, request.StatusApproved)
	if err != nil {
		t.Fatalf("UpdateStatusFromPending() failed: %v", err)
	}
	if !updated {
		t.Fatal("expected the pending request to be updated")
	}

	got, err := s.GetByID(ctx, req.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got.Status != request.StatusApproved {
		t.Fatalf("expected approved, got %s", got.Status)
	}

	// Second transition attempt must lose the guard.
	updated, err = s.UpdateStatusFromPending(ctx, req.ID, request.StatusRejected)
	if err != nil {
		t.Fatalf("UpdateStatusFromPending() failed: %v", err)
	}
	if updated {
		t.Fatal("non-pending request must not be updated")
	}
}

func TestRequestPGStore_UpdateStatusFromPending_InvalidTarget(t *testing.T) {
	ctx, s := setupStore(t)

	if _, err := s.UpdateStatusFromPending(ctx, uuid.NewString(), request.StatusPending); err == nil {
		t.Fatal("pending is not a valid transition target")
	}
}

func TestRequestPGStore_UpdateStatusFromPending_UnknownID(t *testing.T) {
	ctx, s := setupStore(t)

	updated, err := s.UpdateStatusFromPending(ctx, uuid.NewString(), request.StatusApproved)
	if err != nil {
		t.Fatalf("UpdateStatusFromPending() failed: %v", err)
	}
	if updated {
		t.Fatal("unknown id must not report an update")
	}
}

func TestRequestPGStore_LastUpdated(t *testing.T) {
	ctx, s := setupStore(t)

	last, err := s.LastUpdated(ctx)
	if err != nil {
		t.Fatalf("LastUpdated() failed: %v", err)
	}
	if !last.IsZero() {
		t.Fatal("empty store should report zero time")
	}

	req := newTestRequest("0x5555555555555555555555555555555555555555")
	if err := s.Create(ctx, req); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	last, err = s.LastUpdated(ctx)
	if err != nil {
		t.Fatalf("LastUpdated() failed: %v", err)
	}
	if last.IsZero() {
		t.Fatal("store with rows should report a timestamp")
	}
}

func whitelistCount(ctx context.Context, t *testing.T, db *bun.DB) int {
	t.Helper()
	count, err := db.NewSelect().Model((*registry.WhitelistEntryDao)(nil)).Count(ctx)
	if err != nil {
		t.Fatalf("failed to count whitelist rows: %v", err)
	}
	return count
}

func TestRequestPGStore_Create_DuplicateActive(t *testing.T) {
	ctx, db := setupDB(t)
	s := NewStore(db)
	address := "0x6666666666666666666666666666666666666666"

	first := newTestRequest(address)
	if err := s.Create(ctx, first); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	// Second pending request for the same address trips the unique guard.
	err := s.Create(ctx, newTestRequest(address))
	if !errors.Is(err, ErrDuplicateActive) {
		t.Fatalf("expected ErrDuplicateActive, got %v", err)
	}

	// A rejected request does not block a fresh submission.
	if _, err := s.UpdateStatusFromPending(ctx, first.ID, request.StatusRejected); err != nil {
		t.Fatalf("UpdateStatusFromPending() failed: %v", err)
	}
	if err := s.Create(ctx, newTestRequest(address)); err != nil {
		t.Fatalf("Create() after rejection failed: %v", err)
	}
}

func TestRequestPGStore_ApproveAndWhitelist(t *testing.T) {
	ctx, db := setupDB(t)
	s := NewStore(db)
	address := "0x7777777777777777777777777777777777777777"

	req := newTestRequest(address)
	if err := s.Create(ctx, req); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	updated, err := s.ApproveAndWhitelist(ctx, req.ID, address)
	if err != nil {
		t.Fatalf("ApproveAndWhitelist() failed: %v", err)
	}
	if !updated {
		t.Fatal("expected the pending request to be approved")
	}

	got, err := s.GetByID(ctx, req.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got.Status != request.StatusApproved {
		t.Fatalf("expected approved, got %s", got.Status)
	}
	if whitelistCount(ctx, t, db) != 1 {
		t.Fatal("expected the address on the whitelist")
	}

	// Second attempt loses the guard and writes nothing new.
	updated, err = s.ApproveAndWhitelist(ctx, req.ID, address)
	if err != nil {
		t.Fatalf("ApproveAndWhitelist() failed: %v", err)
	}
	if updated {
		t.Fatal("non-pending request must not be updated")
	}
	if whitelistCount(ctx, t, db) != 1 {
		t.Fatal("whitelist must be unchanged")
	}
}

func TestRequestPGStore_ApproveAndWhitelist_RejectedWritesNothing(t *testing.T) {
	ctx, db := setupDB(t)
	s := NewStore(db)
	address := "0x8888888888888888888888888888888888888888"

	req := newTestRequest(address)
	if err := s.Create(ctx, req); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if _, err := s.UpdateStatusFromPending(ctx, req.ID, request.StatusRejected); err != nil {
		t.Fatalf("UpdateStatusFromPending() failed: %v", err)
	}

	updated, err := s.ApproveAndWhitelist(ctx, req.ID, address)
	if err != nil {
		t.Fatalf("ApproveAndWhitelist() failed: %v", err)
	}
	if updated {
		t.Fatal("rejected request must not be approved")
	}
	if whitelistCount(ctx, t, db) != 0 {
		t.Fatal("rejected applicant's address must not reach the whitelist")
	}
}
