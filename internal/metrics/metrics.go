// Package metrics exposes the service's Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "claim_sessions_started_total",
		Help: "Claim wizard sessions opened.",
	})

	Transitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "claim_step_transitions_total",
		Help: "Committed step transitions by direction.",
	}, []string{"direction"})

	AddressLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "claim_address_lookups_total",
		Help: "Postcode lookups by outcome.",
	}, []string{"outcome"})

	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "claim_submissions_total",
		Help: "Claim submissions by outcome.",
	}, []string{"outcome"})
)
