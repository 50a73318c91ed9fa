//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/assignment"
	"dispatch/pkg/logger"
)

type OrderRepository interface {
	Create(ctx context.Context, orderEntity entities.DeliveryOrder) (*entities.DeliveryOrder, error)
	GetByID(ctx context.Context, id string) (*entities.DeliveryOrder, error)
	GetByBookingCode(ctx context.Context, code string) (*entities.DeliveryOrder, error)
	UpdateStatus(ctx context.Context, id string, expectedStatus entities.OrderStatusType, modify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.DeliveryOrder, error)
	CountByStatus(ctx context.Context) ([]entities.OrderStatusCount, error)
}

type DriverRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Driver, error)
}

type AssignmentEngine interface {
	AssignBestDriver(ctx context.Context, point entities.Point) (*assignment.Assignment, error)
}

type DeliveryETAFactory interface {
	CalculateExpectedDelivery(terms entities.CompanyTerms, leadMinutes int64, baseTime time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventDispatcher drains the side-effect list of a committed state
// change. Dispatch is best-effort and must never fail the caller.
type EventDispatcher interface {
	Dispatch(ctx context.Context, events []Event)
}

// Rand feeds booking code generation.
type Rand interface {
	Intn(n int) int
}

// NotificationSender delivers one notification intent. Implemented by a
// thin adapter over the notification service.
type NotificationSender interface {
	SendOrderNotification(ctx context.Context, intent NotificationIntent) error
	SendUrgentNotification(ctx context.Context, intent NotificationIntent) error
}

// EventProducer publishes order lifecycle events keyed by order id so a
// single order's events stay ordered within a partition.
type EventProducer interface {
	Send(ctx context.Context, key string, value []byte) error
}

type dispatcherLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
