package registry

import (
	"context"
	"testing"

	"github.com/rwalabs/platform-middleware/pkg/pgutil"
	mghelper "github.com/rwalabs/platform-middleware/pkg/pgutil/migrations"
)

func setupStore(t *testing.T) (context.Context, Store) {
	t.Helper()
	pgutil.RequireDockerAccess(t)

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &WhitelistEntryDao{}, &AdminWalletDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return ctx, NewStore(db)
}

func TestRegistryPGStore_AddAndIsMember(t *testing.T) {
	ctx, s := setupStore(t)
	address := "0x1111111111111111111111111111111111111111"

	member, err := s.IsMember(ctx, Whitelist, address)
	if err != nil {
		t.Fatalf("IsMember() failed: %v", err)
	}
	if member {
		t.Fatal("fresh store should have no members")
	}

	if err := s.Add(ctx, Whitelist, address); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	member, err = s.IsMember(ctx, Whitelist, address)
	if err != nil {
		t.Fatalf("IsMember() failed: %v", err)
	}
	if !member {
		t.Fatal("added address should be a member")
	}
}

func TestRegistryPGStore_AddIsIdempotent(t *testing.T) {
	ctx, s := setupStore(t)
	address := "0x2222222222222222222222222222222222222222"

	if err := s.Add(ctx, Whitelist, address); err != nil {
		t.Fatalf("first Add() failed: %v", err)
	}
	if err := s.Add(ctx, Whitelist, address); err != nil {
		t.Fatalf("repeated Add() failed: %v", err)
	}

	snap, err := s.Snapshot(ctx, Whitelist)
	if err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}
	if len(snap.Addresses) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(snap.Addresses))
	}
}

func TestRegistryPGStore_AddAdminListRejected(t *testing.T) {
	ctx, s := setupStore(t)

	err := s.Add(ctx, Admins, "0x3333333333333333333333333333333333333333")
	if err == nil {
		t.Fatal("adding to the admin list must fail")
	}
}

func TestRegistryPGStore_SnapshotOrderAndTimestamp(t *testing.T) {
	ctx, s := setupStore(t)

	addresses := []string{
		"0x4444444444444444444444444444444444444444",
		"0x5555555555555555555555555555555555555555",
	}
	for _, address := range addresses {
		if err := s.Add(ctx, Whitelist, address); err != nil {
			t.Fatalf("Add(%s) failed: %v", address, err)
		}
	}

	snap, err := s.Snapshot(ctx, Whitelist)
	if err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}
	if len(snap.Addresses) != len(addresses) {
		t.Fatalf("expected %d entries, got %d", len(addresses), len(snap.Addresses))
	}
	for i, address := range addresses {
		if snap.Addresses[i] != address {
			t.Fatalf("entry %d: got %s want %s", i, snap.Addresses[i], address)
		}
	}
	if snap.LastUpdated.IsZero() {
		t.Fatal("snapshot of a non-empty list must carry a timestamp")
	}
	if snap.Version != SchemaVersion {
		t.Fatalf("unexpected version %s", snap.Version)
	}
}

func TestRegistryPGStore_UnknownList(t *testing.T) {
	ctx, s := setupStore(t)

	if _, err := s.IsMember(ctx, List("strangers"), "0x1111111111111111111111111111111111111111"); err == nil {
		t.Fatal("unknown list must error")
	}
	if _, err := s.Snapshot(ctx, List("strangers")); err == nil {
		t.Fatal("unknown list must error")
	}
}
