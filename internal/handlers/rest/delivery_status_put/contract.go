//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_status_put_test
package delivery_status_put

import (
	"context"

	"dispatch/internal/entities"
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
	Transition(ctx context.Context, orderID string, newStatus entities.OrderStatusType, actor entities.ActorRole, reason string) (*entities.DeliveryOrder, error)
}
