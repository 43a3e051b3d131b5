package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func protectedHandler(t *testing.T, wantAddress string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := WalletAddressFromContext(r.Context())
		if !ok {
			t.Error("wallet address missing from request context")
		}
		if got != wantAddress {
			t.Errorf("context address mismatch: got %s want %s", got, wantAddress)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestRequireAdmin_ValidToken(t *testing.T) {
	issuer := newTestIssuer()
	address := "0x742d35cc6634c0532925a3b844bc9e7595f0beb1"

	token, _, err := issuer.IssueAdminToken(address)
	if err != nil {
		t.Fatalf("IssueAdminToken() failed: %v", err)
	}

	mw := RequireAdmin(issuer, adminDirFunc(allowAll), zap.NewNop())
	srv := mw(protectedHandler(t, address))

	req := httptest.NewRequest(http.MethodGet, "/whitelist-requests", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestRequireAdmin_MissingToken(t *testing.T) {
	mw := RequireAdmin(newTestIssuer(), adminDirFunc(allowAll), zap.NewNop())
	srv := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler must not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/whitelist-requests", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdmin_InvalidToken(t *testing.T) {
	mw := RequireAdmin(newTestIssuer(), adminDirFunc(allowAll), zap.NewNop())
	srv := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler must not run with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/whitelist-requests", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdmin_RevokedAdmin(t *testing.T) {
	issuer := newTestIssuer()
	token, _, err := issuer.IssueAdminToken("0x742d35cc6634c0532925a3b844bc9e7595f0beb1")
	if err != nil {
		t.Fatalf("IssueAdminToken() failed: %v", err)
	}

	// Valid token, but the wallet has since been removed from the admin list.
	mw := RequireAdmin(issuer, adminDirFunc(denyAll), zap.NewNop())
	srv := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler must not run for a revoked admin")
	}))

	req := httptest.NewRequest(http.MethodGet, "/whitelist-requests", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestWalletAddressContext(t *testing.T) {
	ctx := WithWalletAddress(context.Background(), "0xabc")
	got, ok := WalletAddressFromContext(ctx)
	if !ok || got != "0xabc" {
		t.Fatalf("context round trip failed: %s %v", got, ok)
	}

	if _, ok := WalletAddressFromContext(context.Background()); ok {
		t.Fatal("empty context should not carry an address")
	}
}
