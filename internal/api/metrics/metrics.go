// Package metrics defines and registers all custom Prometheus metrics for the
// marketplace API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// JobsCreatedTotal counts newly posted jobs.
// Label:
//   - service: the requested service category (e.g. "cleaning")
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of jobs posted, by service category.",
	},
	[]string{"service"},
)

// JobTransitionsTotal counts successful lifecycle transitions.
// Label:
//   - status: the status the job moved into (e.g. "accepted")
var JobTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_transitions_total",
		Help:      "Total number of successful job status transitions, by new status.",
	},
	[]string{"status"},
)

// RatingsSubmittedTotal counts submitted ratings.
// Label:
//   - stars: the rating value, "1" through "5"
var RatingsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratings_submitted_total",
		Help:      "Total number of job ratings submitted, by star value.",
	},
	[]string{"stars"},
)

// RegistrationsTotal counts account registrations.
// Label:
//   - role: "customer" or "worker"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of account registrations, by role.",
	},
	[]string{"role"},
)
