package news

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/rwalabs/platform-middleware/pkg/app/errors"
	apphttp "github.com/rwalabs/platform-middleware/pkg/app/http"
	"github.com/rwalabs/platform-middleware/pkg/auth"
)

type listResponse struct {
	Items       []*Item   `json:"items"`
	RetrievedAt time.Time `json:"retrievedAt"`
}

type putRequest struct {
	Source string  `json:"source"`
	Items  []*Item `json:"items"`
}

type purgeResponse struct {
	Success bool  `json:"success"`
	Removed int64 `json:"removed"`
}

// RegisterRoutes registers the news cache endpoints on the given chi
// router. Reading is public; ingestion and purging are admin operations.
func RegisterRoutes(r chi.Router, svc *Service, issuer *auth.TokenIssuer, admins auth.AdminDirectory, logger *zap.Logger) {
	h := &newsHTTP{svc: svc}

	r.Get("/news", apphttp.HandleErrorLog(h.list, logger))

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin(issuer, admins, logger))
		r.Post("/news", apphttp.HandleErrorLog(h.put, logger))
		r.Delete("/news/cache", apphttp.HandleErrorLog(h.purge, logger))
	})
}

type newsHTTP struct {
	svc *Service
}

func (h *newsHTTP) list(w http.ResponseWriter, r *http.Request) error {
	items, err := h.svc.List(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, &listResponse{
		Items:       items,
		RetrievedAt: time.Now().UTC(),
	})
}

func (h *newsHTTP) put(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 4<<20)) // 4MB limit
	if err != nil {
		return apperrors.ValidationError(err, "failed to read request")
	}

	var req putRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.ValidationError(err, "invalid JSON")
	}

	if err := h.svc.Put(r.Context(), req.Source, req.Items); err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]any{"success": true, "stored": len(req.Items)})
}

func (h *newsHTTP) purge(w http.ResponseWriter, r *http.Request) error {
	removed, err := h.svc.Purge(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, &purgeResponse{Success: true, Removed: removed})
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
