// Package gate answers the single question UI shells ask on every page
// load: is this wallet allowed in. Decisions are pure over the inputs and
// the current registry content and always fail closed.
package gate

import (
	"context"

	"github.com/rwalabs/platform-middleware/internal/metrics"
	"github.com/rwalabs/platform-middleware/pkg/registry"
)

// Decision reasons surfaced to callers. NOT_CONNECTED is informational,
// the caller typically still renders public content.
const (
	ReasonNotConnected   = "NOT_CONNECTED"
	ReasonNotWhitelisted = "NOT_WHITELISTED"
)

// Decision is the outcome of an access check.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// Membership is the registry view the gate consults.
type Membership interface {
	IsMember(ctx context.Context, list registry.List, address string) bool
}

// Gate evaluates access decisions against the registry.
type Gate struct {
	registry Membership
}

// New creates a Gate over the given registry.
func New(reg Membership) *Gate {
	return &Gate{registry: reg}
}

// Check decides whether address may enter the protected app.
func (g *Gate) Check(ctx context.Context, address string, connected bool) Decision {
	return g.check(ctx, registry.Whitelist, address, connected)
}

// CheckAdmin decides whether address may enter admin-only surfaces.
func (g *Gate) CheckAdmin(ctx context.Context, address string, connected bool) Decision {
	return g.check(ctx, registry.Admins, address, connected)
}

func (g *Gate) check(ctx context.Context, list registry.List, address string, connected bool) Decision {
	if !connected {
		metrics.AccessChecks.WithLabelValues("denied", "not_connected").Inc()
		return Decision{Allowed: false, Reason: ReasonNotConnected}
	}
	if !g.registry.IsMember(ctx, list, address) {
		metrics.AccessChecks.WithLabelValues("denied", "not_whitelisted").Inc()
		return Decision{Allowed: false, Reason: ReasonNotWhitelisted}
	}
	metrics.AccessChecks.WithLabelValues("allowed", "ok").Inc()
	return Decision{Allowed: true}
}
