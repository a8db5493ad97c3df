// Package metrics provides Prometheus metrics for docket.
//
// Labels are limited to court IDs, model IDs, task types and outcomes so
// cardinality stays bounded by configuration, never by input documents.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ValidationsTotal counts compliance validations by court and outcome.
	ValidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docket_validations_total",
		Help: "Total number of compliance validations, by court and outcome (compliant/violations/unknown).",
	}, []string{"court", "outcome"})

	// ViolationsTotal counts individual violations by rule.
	ViolationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docket_violations_total",
		Help: "Total number of compliance violations found, by rule.",
	}, []string{"rule"})

	// RoutingAttemptsTotal counts model attempts by task, model and outcome.
	RoutingAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docket_routing_attempts_total",
		Help: "Total number of model attempts, by task, model and outcome (success/failure).",
	}, []string{"task", "model", "outcome"})

	// RoutingAttemptSeconds observes model attempt latency.
	RoutingAttemptSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "docket_routing_attempt_seconds",
		Help:    "Latency of model attempts in seconds, by model.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	}, []string{"model"})

	// CourtProfiles tracks how many court profiles are registered.
	CourtProfiles = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "docket_court_profiles",
		Help: "Current number of registered court profiles.",
	})
)

// Outcome label values.
const (
	OutcomeCompliant  = "compliant"
	OutcomeViolations = "violations"
	OutcomeUnknown    = "unknown"
	OutcomeSuccess    = "success"
	OutcomeFailure    = "failure"
)
