package order_status_changed

import (
	"context"

	"dispatch/internal/entities"
	notificationservice "dispatch/internal/service/notification"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type AvailabilityCache interface {
	Invalidate(ctx context.Context, driverID int64) error
}

type Notifier interface {
	SendOrderNotification(ctx context.Context, request notificationservice.SendRequest) (*entities.Notification, error)
}
