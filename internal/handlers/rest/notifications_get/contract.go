//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifications_get_test
package notifications_get

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

type Service interface {
	GetUserNotifications(ctx context.Context, tenant entities.Tenant, recipientID int64, options notificationservice.ListOptions) ([]entities.Notification, error)
}
