package gate

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/rwalabs/platform-middleware/pkg/app/http"
)

// RegisterRoutes registers the access check endpoint on the given chi router.
//
// GET /access?address=0x...&scope=whitelist|admins
// An absent or empty address is treated as a disconnected wallet.
func RegisterRoutes(r chi.Router, g *Gate, logger *zap.Logger) {
	h := &gateHTTP{gate: g}
	r.Get("/access", apphttp.HandleErrorLog(h.check, logger))
}

type gateHTTP struct {
	gate *Gate
}

func (h *gateHTTP) check(w http.ResponseWriter, r *http.Request) error {
	address := r.URL.Query().Get("address")
	connected := address != ""

	var decision Decision
	if r.URL.Query().Get("scope") == "admins" {
		decision = h.gate.CheckAdmin(r.Context(), address, connected)
	} else {
		decision = h.gate.Check(r.Context(), address, connected)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(decision)
}
