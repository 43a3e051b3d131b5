package auth

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/rwalabs/platform-middleware/pkg/app/errors"
)

var (
	// ErrNotAdmin is returned when the signing wallet is not on the admin list.
	ErrNotAdmin = errors.New("wallet is not on the admin list")
)

// LoginRequest carries an EIP-191 login attempt: the signed message and the
// signature produced by the wallet.
type LoginRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token     string    `json:"token"`
	Address   string    `json:"address"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LoginService exchanges a wallet signature for an admin session token.
type LoginService struct {
	issuer *TokenIssuer
	admins AdminDirectory
	logger *zap.Logger
}

// NewLoginService creates the admin login service.
func NewLoginService(issuer *TokenIssuer, admins AdminDirectory, logger *zap.Logger) *LoginService {
	return &LoginService{issuer: issuer, admins: admins, logger: logger}
}

// Login verifies the signature, confirms admin membership and mints a token.
func (s *LoginService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if req.Message == "" || req.Signature == "" {
		return nil, apperrors.UnauthorizedError(nil, "message and signature required")
	}

	recovered, err := VerifyEIP191Signature(req.Message, req.Signature)
	if err != nil {
		return nil, apperrors.UnauthorizedError(err, "invalid signature")
	}

	address := NormalizeAddress(recovered.Hex())
	if !s.admins.IsAdmin(ctx, address) {
		return nil, apperrors.ForbiddenError(ErrNotAdmin, "wallet is not an admin")
	}

	token, expiresAt, err := s.issuer.IssueAdminToken(address)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}

	s.logger.Info("admin session issued",
		zap.String("address", address),
		zap.Time("expires_at", expiresAt),
	)

	return &LoginResponse{
		Token:     token,
		Address:   address,
		ExpiresAt: expiresAt,
	}, nil
}
