// Package metrics defines and registers all custom Prometheus metrics for the
// booking API. It is the single source of truth for metric names, labels, and
// help strings. Collectors register themselves with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// LoginsTotal counts login attempts by outcome.
// Labels:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AppointmentsBookedTotal counts successfully created appointments.
// Label:
//   - service_id: id of the booked service
var AppointmentsBookedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_booked_total",
		Help:      "Total number of appointments booked, by service id.",
	},
	[]string{"service_id"},
)

// BookingConflictsTotal counts rejected bookings.
// Label:
//   - reason: "slot_taken" or "date_blocked"
var BookingConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_conflicts_total",
		Help:      "Total number of bookings rejected due to conflicts.",
	},
	[]string{"reason"},
)

// NotificationsProcessedTotal counts confirmation jobs that completed.
var NotificationsProcessedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_processed_total",
		Help:      "Total number of confirmation notifications recorded.",
	},
)

// NotificationsErrorsTotal counts confirmation jobs that failed.
var NotificationsErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_errors_total",
		Help:      "Total number of confirmation notifications that failed.",
	},
)

// NotificationQueueDepth tracks pending jobs per dispatcher worker.
// Label:
//   - worker_id: numeric worker index ("0", "1", …)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
