package staking

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/rwalabs/platform-middleware/pkg/app/errors"
	apphttp "github.com/rwalabs/platform-middleware/pkg/app/http"
)

// RegisterRoutes registers the staking read endpoints on the given chi router.
func RegisterRoutes(r chi.Router, svc *Service, logger *zap.Logger) {
	h := &stakingHTTP{svc: svc}
	r.Get("/staking/metrics", apphttp.HandleErrorLog(h.metrics, logger))
	r.Get("/staking/projection", apphttp.HandleErrorLog(h.projection, logger))
}

type stakingHTTP struct {
	svc *Service
}

func (h *stakingHTTP) metrics(w http.ResponseWriter, r *http.Request) error {
	pools, err := h.svc.ListMetrics(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, map[string]any{"pools": pools})
}

func (h *stakingHTTP) projection(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()

	amount, err := decimal.NewFromString(q.Get("amount"))
	if err != nil {
		return apperrors.ValidationError(err, "invalid amount")
	}
	days, err := strconv.Atoi(q.Get("days"))
	if err != nil {
		return apperrors.ValidationError(err, "invalid days")
	}

	proj, err := h.svc.Project(r.Context(), q.Get("symbol"), amount, days)
	if err != nil {
		return err
	}
	return writeJSON(w, proj)
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(v)
}
