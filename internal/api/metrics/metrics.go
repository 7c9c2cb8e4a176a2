// Package metrics defines the custom Prometheus metrics for the ride-booking
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ridebooking"

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - role: "user" or "driver"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users registered, by role.",
	},
	[]string{"role"},
)

// TripsCreatedTotal counts trips created by riders.
var TripsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trips_created_total",
		Help:      "Total number of trips created.",
	},
)

// TripsAcceptedTotal counts trips accepted by drivers.
var TripsAcceptedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trips_accepted_total",
		Help:      "Total number of trips accepted.",
	},
)

// TripAcceptConflictsTotal counts acceptance attempts that lost the race,
// i.e. the trip was no longer pending when the driver tried to take it.
var TripAcceptConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trip_accept_conflicts_total",
		Help:      "Total number of acceptance attempts rejected because the trip was already taken.",
	},
)
