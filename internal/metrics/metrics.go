// Package metrics defines the service's Prometheus instrumentation.
// All collectors are registered on the default registry and exposed on
// the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AccessChecks counts gate decisions by outcome (allowed, denied)
	// and reason (ok, not_connected, not_whitelisted).
	AccessChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "access_checks_total",
		Help: "Access gate decisions by outcome and reason",
	}, []string{"outcome", "reason"})

	// RequestsSubmitted counts accepted whitelist applications.
	RequestsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "whitelist_requests_submitted_total",
		Help: "Whitelist applications accepted for review",
	})

	// RequestsResolved counts terminal request transitions by status
	// (approved, rejected).
	RequestsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "whitelist_requests_resolved_total",
		Help: "Whitelist requests moved to a terminal status",
	}, []string{"status"})

	// AdminLogins counts admin session issuance attempts by result
	// (success, unauthorized, forbidden).
	AdminLogins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_logins_total",
		Help: "Admin login attempts by result",
	}, []string{"result"})

	// NewsSweeps counts cache sweeper runs.
	NewsSweeps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "news_cache_sweeps_total",
		Help: "Expired news cache sweep runs",
	})

	// NewsItemsEvicted counts expired news rows removed by the sweeper.
	NewsItemsEvicted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "news_cache_evicted_total",
		Help: "Expired news items removed from the cache",
	})
)
