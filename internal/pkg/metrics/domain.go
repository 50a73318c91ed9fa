package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_bookings_total",
			Help: "Booking attempts by outcome (booked, declined, failed)",
		},
		[]string{"outcome"},
	)

	NotificationDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_notification_deliveries_total",
			Help: "Notification channel deliveries by channel and final status",
		},
		[]string{"channel", "status"},
	)

	RealtimeDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_realtime_deliveries_total",
			Help: "Realtime message deliveries by resolution path (local, remote, queued, dropped)",
		},
		[]string{"via"},
	)

	RealtimeConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dispatch_realtime_connections",
			Help: "Live WebSocket connections on this process by app type",
		},
		[]string{"app_type"},
	)
)
