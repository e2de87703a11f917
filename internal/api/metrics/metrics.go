// Package metrics defines and registers all custom Prometheus metrics for the
// RiderApp admin console. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "riderapp"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AccountsCreatedTotal counts directory accounts created.
// Label:
//   - role: the directory role label (e.g. "Manager")
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of directory accounts created, by role.",
	},
	[]string{"role"},
)

// AccountsDeletedTotal counts delete requests.
// Label:
//   - result: "deleted" (account removed) or "missing" (id not found, no-op)
var AccountsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_deleted_total",
		Help:      "Total number of account delete requests, by result.",
	},
	[]string{"result"},
)

// SettingsUpdatesTotal counts successful system settings updates.
var SettingsUpdatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "settings_updates_total",
		Help:      "Total number of successful system settings updates.",
	},
)

// TokenRevocationsTotal counts tokens denylisted through logout.
var TokenRevocationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_revocations_total",
		Help:      "Total number of bearer tokens revoked via logout.",
	},
)
