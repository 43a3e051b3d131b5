package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/rwalabs/platform-middleware/pkg/app/errors"
	apphttp "github.com/rwalabs/platform-middleware/pkg/app/http"
)

// AdminDirectory answers whether a wallet address belongs to the admin list.
// Implementations must fail closed.
type AdminDirectory interface {
	IsAdmin(ctx context.Context, address string) bool
}

// AuthorizeAdmin extracts and verifies the bearer token on r and confirms
// the subject is still on the admin list at request time, so revoking an
// admin wallet takes effect without waiting for token expiry.
// Returns the normalized admin address.
func AuthorizeAdmin(r *http.Request, issuer *TokenIssuer, admins AdminDirectory) (string, error) {
	tokenString, ok := bearerToken(r)
	if !ok {
		return "", apperrors.UnauthorizedError(nil, "missing bearer token")
	}

	address, err := issuer.VerifyAdminToken(tokenString)
	if err != nil {
		return "", apperrors.UnauthorizedError(err, "invalid session token")
	}

	if !admins.IsAdmin(r.Context(), address) {
		return "", apperrors.ForbiddenError(nil, "wallet is not an admin")
	}

	return address, nil
}

// RequireAdmin guards a route subtree with admin session authentication.
func RequireAdmin(issuer *TokenIssuer, admins AdminDirectory, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			address, err := AuthorizeAdmin(r, issuer, admins)
			if err != nil {
				if apperrors.Is(err, apperrors.CategoryForbidden) {
					logger.Warn("admin route denied",
						zap.String("path", r.URL.Path))
				}
				apphttp.DefaultErrorHandler(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithWalletAddress(r.Context(), address)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}
