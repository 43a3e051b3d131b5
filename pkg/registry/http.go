package registry

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/rwalabs/platform-middleware/pkg/app/http"
)

type whitelistResponse struct {
	WhitelistedAddresses []string  `json:"whitelistedAddresses"`
	LastUpdated          time.Time `json:"lastUpdated"`
	Version              string    `json:"version"`
}

type adminWalletsResponse struct {
	AdminAddresses []string  `json:"adminAddresses"`
	LastUpdated    time.Time `json:"lastUpdated"`
	Version        string    `json:"version"`
}

// RegisterRoutes registers the public registry read endpoints on the given
// chi router. Both lists are world-readable; membership carries no secrets.
func RegisterRoutes(r chi.Router, reg *Registry, logger *zap.Logger) {
	h := &registryHTTP{registry: reg}
	r.Get("/whitelist", apphttp.HandleErrorLog(h.whitelist, logger))
	r.Get("/admin-wallets", apphttp.HandleErrorLog(h.adminWallets, logger))
}

type registryHTTP struct {
	registry *Registry
}

func (h *registryHTTP) whitelist(w http.ResponseWriter, r *http.Request) error {
	snap, err := h.registry.Snapshot(r.Context(), Whitelist)
	if err != nil {
		return err
	}
	return writeJSON(w, &whitelistResponse{
		WhitelistedAddresses: snap.Addresses,
		LastUpdated:          snap.LastUpdated,
		Version:              snap.Version,
	})
}

func (h *registryHTTP) adminWallets(w http.ResponseWriter, r *http.Request) error {
	snap, err := h.registry.Snapshot(r.Context(), Admins)
	if err != nil {
		return err
	}
	return writeJSON(w, &adminWalletsResponse{
		AdminAddresses: snap.Addresses,
		LastUpdated:    snap.LastUpdated,
		Version:        snap.Version,
	})
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(v)
}
