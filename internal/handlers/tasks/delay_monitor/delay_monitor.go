package delay_monitor

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	notificationservice "dispatch/internal/service/notification"
	"dispatch/pkg/logger"
)

const lockKey = "delay-monitor"

type OrderStore interface {
	ListOverdue(ctx context.Context, asOf time.Time) ([]entities.DeliveryOrder, error)
}

type Notifier interface {
	SendUrgentNotification(ctx context.Context, request notificationservice.SendRequest) (*entities.Notification, error)
}

type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) bool
	Release(ctx context.Context, key string) error
}

type taskLogger interface {
	Warn(msg string, fields ...logger.Field)
}

// DelayMonitor scans for orders past their expected delivery time and
// tells the customer their delivery is late. The scan runs behind a
// distributed lock so only one process notifies per tick, and only
// orders that became overdue since the previous tick are notified, so a
// late order produces exactly one message.
type DelayMonitor struct {
	orders   OrderStore
	notifier Notifier
	lock     Locker
	log      taskLogger
	interval time.Duration
	lockTTL  time.Duration
}

func NewDelayMonitor(
	orders OrderStore,
	notifier Notifier,
	lock Locker,
	log taskLogger,
	interval time.Duration,
	lockTTL time.Duration,
) *DelayMonitor {
	return &DelayMonitor{
		orders:   orders,
		notifier: notifier,
		lock:     lock,
		log:      log,
		interval: interval,
		lockTTL:  lockTTL,
	}
}

func (d *DelayMonitor) TTL() time.Duration {
	return d.interval
}

func (d *DelayMonitor) Do(ctx context.Context) error {
	if !d.lock.Acquire(ctx, lockKey, d.lockTTL) {
		return nil
	}
	defer func() {
		if err := d.lock.Release(ctx, lockKey); err != nil {
			d.log.Warn("failed to release delay monitor lock",
				logger.NewField("error", err))
		}
	}()

	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	now := time.Now().UTC()
	overdue, err := d.orders.ListOverdue(ctxWithTimeout, now)
	if err != nil {
		return fmt.Errorf("list overdue orders: %w", err)
	}

	newlyOverdueSince := now.Add(-d.interval)
	for _, order := range overdue {
		if !order.ExpectedDeliveryAt.After(newlyOverdueSince) {
			continue
		}

		_, err := d.notifier.SendUrgentNotification(ctxWithTimeout, notificationservice.SendRequest{
			RecipientID:   order.CustomerID,
			RecipientKind: entities.RecipientCustomer,
			Tenant:        entities.TenantCustomerApp,
			Title:         "Delivery delayed",
			Body:          "Your delivery is running late. We are on it.",
			Type:          "order_delay",
			Data: map[string]string{
				"order_id":     order.ID,
				"booking_code": order.BookingCode,
			},
		})
		if err != nil {
			d.log.Warn("failed to send delay notification",
				logger.NewField("order_id", order.ID),
				logger.NewField("error", err))
		}
	}
	return nil
}

func (d *DelayMonitor) Info() string {
	return "delivery delay monitor"
}
