// Package metrics defines and registers all custom Prometheus metrics for the
// movie rental API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rental"

// RegistrationsTotal counts account registrations.
// Labels:
//   - role: "member" or "admin"
//   - result: "ok" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// MoviesAddedTotal counts movies added to the catalog.
var MoviesAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movies_added_total",
		Help:      "Total number of movies added to the catalog.",
	},
)

// MoviesRemovedTotal counts movies removed from the catalog.
var MoviesRemovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movies_removed_total",
		Help:      "Total number of movies removed from the catalog.",
	},
)

// RentalsTotal counts successful rental quotes.
var RentalsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rentals_total",
		Help:      "Total number of successful movie rentals.",
	},
)

// PurchasesTotal counts successful purchases.
var PurchasesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of successful movie purchases.",
	},
)
