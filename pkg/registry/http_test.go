package registry_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/rwalabs/platform-middleware/pkg/registry"
	"github.com/rwalabs/platform-middleware/pkg/registry/mocks"
)

func newTestRouter(t *testing.T, storeMock *mocks.Store) chi.Router {
	t.Helper()
	r := chi.NewRouter()
	registry.RegisterRoutes(r, registry.New(storeMock, zap.NewNop()), zap.NewNop())
	return r
}

func TestWhitelistEndpoint(t *testing.T) {
	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().Snapshot(mock.Anything, registry.Whitelist).Return(&registry.Snapshot{
		Addresses:   []string{testAddress},
		LastUpdated: time.Now(),
		Version:     registry.SchemaVersion,
	}, nil).Once()

	r := newTestRouter(t, storeMock)

	req := httptest.NewRequest(http.MethodGet, "/whitelist", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		WhitelistedAddresses []string `json:"whitelistedAddresses"`
		Version              string   `json:"version"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.WhitelistedAddresses) != 1 || resp.WhitelistedAddresses[0] != testAddress {
		t.Fatalf("unexpected addresses: %v", resp.WhitelistedAddresses)
	}
	if resp.Version != registry.SchemaVersion {
		t.Fatalf("unexpected version: %s", resp.Version)
	}
}

func TestAdminWalletsEndpoint(t *testing.T) {
	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().Snapshot(mock.Anything, registry.Admins).Return(&registry.Snapshot{
		Addresses:   []string{testAddress},
		LastUpdated: time.Now(),
		Version:     registry.SchemaVersion,
	}, nil).Once()

	r := newTestRouter(t, storeMock)

	req := httptest.NewRequest(http.MethodGet, "/admin-wallets", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		AdminAddresses []string `json:"adminAddresses"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.AdminAddresses) != 1 {
		t.Fatalf("unexpected addresses: %v", resp.AdminAddresses)
	}
}

func TestWhitelistEndpoint_StorageError(t *testing.T) {
	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().Snapshot(mock.Anything, registry.Whitelist).
		Return(nil, errors.New("connection refused")).Once()

	r := newTestRouter(t, storeMock)

	req := httptest.NewRequest(http.MethodGet, "/whitelist", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
