package auth

import (
	"testing"
	"time"
)

const testIssuer = "platform-middleware-test"

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), testIssuer, time.Hour)
	address := "0x742d35cc6634c0532925a3b844bc9e7595f0beb1"

	token, expiresAt, err := issuer.IssueAdminToken(address)
	if err != nil {
		t.Fatalf("IssueAdminToken() failed: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatal("token already expired at issuance")
	}

	got, err := issuer.VerifyAdminToken(token)
	if err != nil {
		t.Fatalf("VerifyAdminToken() failed: %v", err)
	}
	if got != address {
		t.Fatalf("subject mismatch: got %s want %s", got, address)
	}
}

func TestTokenIssuer_NormalizesSubject(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), testIssuer, time.Hour)

	token, _, err := issuer.IssueAdminToken("0x742D35Cc6634C0532925a3b844Bc9e7595f0bEb1")
	if err != nil {
		t.Fatalf("IssueAdminToken() failed: %v", err)
	}

	got, err := issuer.VerifyAdminToken(token)
	if err != nil {
		t.Fatalf("VerifyAdminToken() failed: %v", err)
	}
	if got != "0x742d35cc6634c0532925a3b844bc9e7595f0beb1" {
		t.Fatalf("subject not normalized: %s", got)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret-a"), testIssuer, time.Hour)
	other := NewTokenIssuer([]byte("secret-b"), testIssuer, time.Hour)

	token, _, err := issuer.IssueAdminToken("0x742d35cc6634c0532925a3b844bc9e7595f0beb1")
	if err != nil {
		t.Fatalf("IssueAdminToken() failed: %v", err)
	}

	if _, err := other.VerifyAdminToken(token); err == nil {
		t.Fatal("expected verification failure with wrong secret")
	}
}

func TestTokenIssuer_WrongIssuer(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), "issuer-a", time.Hour)
	other := NewTokenIssuer([]byte("test-secret"), "issuer-b", time.Hour)

	token, _, err := issuer.IssueAdminToken("0x742d35cc6634c0532925a3b844bc9e7595f0beb1")
	if err != nil {
		t.Fatalf("IssueAdminToken() failed: %v", err)
	}

	if _, err := other.VerifyAdminToken(token); err == nil {
		t.Fatal("expected verification failure with wrong issuer")
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), testIssuer, -time.Minute)

	token, _, err := issuer.IssueAdminToken("0x742d35cc6634c0532925a3b844bc9e7595f0beb1")
	if err != nil {
		t.Fatalf("IssueAdminToken() failed: %v", err)
	}

	if _, err := issuer.VerifyAdminToken(token); err == nil {
		t.Fatal("expected verification failure for expired token")
	}
}

func TestTokenIssuer_Garbage(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), testIssuer, time.Hour)

	if _, err := issuer.VerifyAdminToken("not.a.jwt"); err == nil {
		t.Fatal("expected verification failure for garbage token")
	}
}
