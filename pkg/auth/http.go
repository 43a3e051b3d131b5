package auth

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rwalabs/platform-middleware/internal/metrics"
	apperrors "github.com/rwalabs/platform-middleware/pkg/app/errors"
	apphttp "github.com/rwalabs/platform-middleware/pkg/app/http"
)

// RegisterRoutes registers the admin login endpoint on the given chi router.
func RegisterRoutes(r chi.Router, svc *LoginService, logger *zap.Logger) {
	h := &loginHTTP{svc: svc}
	r.Post("/auth/login", apphttp.HandleErrorLog(h.login, logger))
}

type loginHTTP struct {
	svc *LoginService
}

func (h *loginHTTP) login(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.ValidationError(err, "failed to read request")
	}

	var req LoginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.ValidationError(err, "invalid JSON")
	}

	resp, err := h.svc.Login(r.Context(), &req)
	if err != nil {
		if apperrors.Is(err, apperrors.CategoryForbidden) {
			metrics.AdminLogins.WithLabelValues("forbidden").Inc()
		} else {
			metrics.AdminLogins.WithLabelValues("unauthorized").Inc()
		}
		return err
	}
	metrics.AdminLogins.WithLabelValues("success").Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(resp)
}
