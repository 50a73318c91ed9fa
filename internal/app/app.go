package app

import (
	"dispatch/internal/handlers/rest/booking_post"
	"dispatch/internal/handlers/rest/delivery_reassign_post"
	"dispatch/internal/handlers/rest/delivery_status_put"
	"dispatch/internal/handlers/rest/driver_location_put"
	"dispatch/internal/handlers/rest/notification_read_post"
	"dispatch/internal/handlers/rest/notifications_get"
	"dispatch/internal/handlers/rest/order_get"
	"dispatch/internal/handlers/rest/orders_get"
	"dispatch/internal/handlers/ws/connect"
	"dispatch/internal/pkg/availabilitycache"
	"dispatch/internal/pkg/kafka"
	"dispatch/internal/realtime/redisfabric"
	"dispatch/internal/realtime/registry"
	"dispatch/internal/realtime/router"
	notificationService "dispatch/internal/service/notification"
	"dispatch/pkg/background"
)

type ServiceBooking interface {
	booking_post.Service
	delivery_status_put.Service
	delivery_reassign_post.Service
	order_get.Service
	orders_get.Service
}

type ServiceNotification interface {
	notifications_get.Service
	notification_read_post.Service
}

type Application struct {
	ServiceBooking      ServiceBooking
	ServiceNotification ServiceNotification
	DriverStore         driver_location_put.DriverStore
	Authenticator       connect.Authenticator
	ConnRegistry        *registry.Registry
	RealtimeRouter      *router.Router
	Fabric              *redisfabric.Fabric
	EventProducer       *kafka.Producer
	BackgroundWorkers   *background.Worker
}

type KafkaWorkerApp struct {
	AvailabilityCache   *availabilitycache.Cache
	ServiceNotification *notificationService.Service
}
