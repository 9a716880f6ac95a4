// Package metrics defines the Prometheus counters shared across the
// domain services. Counters register against the default registry;
// exposing them (if at all) is the embedding application's business.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PostsAccepted counts posts that cleared the creation pipeline.
	PostsAccepted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "plateplanner_posts_accepted_total",
			Help: "Number of posts that passed validation",
		})

	// PostsRejected counts posts rejected by the creation pipeline,
	// labeled with the field that failed first.
	PostsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plateplanner_posts_rejected_total",
			Help: "Number of posts rejected by validation",
		},
		[]string{"field"},
	)

	// ProfileConstructions counts successfully constructed profiles.
	ProfileConstructions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "plateplanner_profile_constructions_total",
			Help: "Number of profiles that passed validation",
		})

	// ProfileRejections counts profile construction failures.
	ProfileRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "plateplanner_profile_rejections_total",
			Help: "Number of profile records rejected by validation",
		})

	// LoginAttempts counts login attempts by outcome (accepted/rejected).
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plateplanner_login_attempts_total",
			Help: "Number of login attempts",
		},
		[]string{"outcome"},
	)

	// CalorieEntriesLogged counts journal entries written.
	CalorieEntriesLogged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "plateplanner_calorie_entries_total",
			Help: "Number of calorie journal entries logged",
		})
)
