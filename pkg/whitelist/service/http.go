package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rwalabs/platform-middleware/internal/metrics"
	apperrors "github.com/rwalabs/platform-middleware/pkg/app/errors"
	apphttp "github.com/rwalabs/platform-middleware/pkg/app/http"
	"github.com/rwalabs/platform-middleware/pkg/auth"
	"github.com/rwalabs/platform-middleware/pkg/request"
)

// actionRequest is the admin review shape of POST /whitelist-requests.
// The same endpoint also accepts the public submission shape; the two are
// told apart by the presence of the action field.
type actionRequest struct {
	Action        string `json:"action"`
	RequestID     string `json:"requestId"`
	WalletAddress string `json:"walletAddress"`
}

type submitResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

type actionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type httpHandler struct {
	svc    Service
	issuer *auth.TokenIssuer
	admins auth.AdminDirectory
}

// RegisterRoutes registers the whitelist request endpoints on the given chi
// router. POST is public for submissions; the action shape and the listing
// endpoint authenticate against the admin list.
func RegisterRoutes(r chi.Router, svc Service, issuer *auth.TokenIssuer, admins auth.AdminDirectory, logger *zap.Logger) {
	h := &httpHandler{svc: svc, issuer: issuer, admins: admins}

	r.Post("/whitelist-requests", apphttp.HandleErrorLog(h.post, logger))

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin(issuer, admins, logger))
		r.Get("/whitelist-requests", apphttp.HandleErrorLog(h.list, logger))
	})
}

func (h *httpHandler) post(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.ValidationError(err, "failed to read request")
	}

	var action actionRequest
	if err := json.Unmarshal(body, &action); err != nil {
		return apperrors.ValidationError(err, "invalid JSON")
	}

	if action.Action != "" {
		return h.review(w, r, &action)
	}
	return h.submit(w, r, body)
}

func (h *httpHandler) submit(w http.ResponseWriter, r *http.Request, body []byte) error {
	var req SubmitRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.ValidationError(err, "invalid JSON")
	}

	rec, err := h.svc.Submit(r.Context(), &req)
	if err != nil {
		return err
	}
	metrics.RequestsSubmitted.Inc()

	return writeJSON(w, http.StatusCreated, &submitResponse{
		Success:   true,
		Message:   "whitelist request submitted successfully",
		RequestID: rec.ID,
	})
}

func (h *httpHandler) review(w http.ResponseWriter, r *http.Request, action *actionRequest) error {
	if _, err := auth.AuthorizeAdmin(r, h.issuer, h.admins); err != nil {
		return err
	}
	if action.RequestID == "" {
		return apperrors.ValidationError(nil, "requestId is required")
	}

	switch action.Action {
	case "approve":
		if action.WalletAddress == "" {
			return apperrors.ValidationError(nil, "walletAddress is required for approve")
		}
		if err := h.svc.Approve(r.Context(), action.RequestID, action.WalletAddress); err != nil {
			return err
		}
		metrics.RequestsResolved.WithLabelValues(string(request.StatusApproved)).Inc()
		return writeJSON(w, http.StatusOK, &actionResponse{
			Success: true,
			Message: "request approved and wallet whitelisted",
		})
	case "reject":
		if err := h.svc.Reject(r.Context(), action.RequestID); err != nil {
			return err
		}
		metrics.RequestsResolved.WithLabelValues(string(request.StatusRejected)).Inc()
		return writeJSON(w, http.StatusOK, &actionResponse{
			Success: true,
			Message: "request rejected",
		})
	default:
		return apperrors.ValidationError(nil, fmt.Sprintf("invalid action %q", action.Action))
	}
}

func (h *httpHandler) list(w http.ResponseWriter, r *http.Request) error {
	list, err := h.svc.ListRequests(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, list)
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
