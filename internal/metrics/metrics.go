package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Commune
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Ledger Metrics
	FriendshipsRequestedTotal prometheus.Counter
	FriendshipsAcceptedTotal  prometheus.Counter
	MembershipsAcceptedTotal  prometheus.Counter
	AttendanceUpdatesTotal    prometheus.Counter

	// Notification Fan-out Metrics
	NotificationsInsertedTotal prometheus.CounterVec
	NotificationsFailedTotal   prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commune_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "commune_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "commune_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		FriendshipsRequestedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "commune_friendships_requested_total",
				Help: "Friend requests created",
			},
		),
		FriendshipsAcceptedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "commune_friendships_accepted_total",
				Help: "Friend requests accepted",
			},
		),
		MembershipsAcceptedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "commune_memberships_accepted_total",
				Help: "Community invites accepted",
			},
		),
		AttendanceUpdatesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "commune_attendance_updates_total",
				Help: "Event attendance status changes",
			},
		),

		NotificationsInsertedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commune_notifications_inserted_total",
				Help: "Notifications persisted by type",
			},
			[]string{"type"},
		),
		NotificationsFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commune_notifications_failed_total",
				Help: "Notification inserts that failed, by type",
			},
			[]string{"type"},
		),
	}
}
