package booking

import (
	"context"
	"encoding/json"
	"time"

	"dispatch/pkg/logger"
)

// Dispatcher drains event side-effect lists: one Kafka message per
// event plus every notification intent. All deliveries are best-effort;
// a failed side effect is logged and never propagated, the state change
// is already committed.
type Dispatcher struct {
	notifier NotificationSender
	producer EventProducer
	logger   dispatcherLogger
}

func NewDispatcher(notifier NotificationSender, producer EventProducer, log dispatcherLogger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		producer: producer,
		logger:   log,
	}
}

type orderEventMessage struct {
	Type           string    `json:"type"`
	OrderID        string    `json:"order_id"`
	BookingCode    string    `json:"booking_code"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	Actor          string    `json:"actor"`
	DriverID       int64     `json:"driver_id"`
	CustomerID     int64     `json:"customer_id"`
	StoreStaffID   int64     `json:"store_staff_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func (d *Dispatcher) Dispatch(ctx context.Context, events []Event) {
	for _, event := range events {
		d.produce(ctx, event)

		for _, intent := range event.Notifications {
			d.send(ctx, intent)
		}
	}
}

func (d *Dispatcher) produce(ctx context.Context, event Event) {
	message := orderEventMessage{
		Type:           string(event.Type),
		OrderID:        event.Order.ID,
		BookingCode:    event.Order.BookingCode,
		Status:         event.Order.Status.String(),
		PreviousStatus: event.PreviousStatus.String(),
		Actor:          event.Actor.String(),
		DriverID:       event.Order.Driver.ID,
		CustomerID:     event.Order.CustomerID,
		StoreStaffID:   event.Order.StoreStaffID,
		OccurredAt:     event.OccurredAt,
	}

	payload, err := json.Marshal(message)
	if err != nil {
		d.logger.Warn("failed to encode order event",
			logger.NewField("order_id", event.Order.ID),
			logger.NewField("error", err))
		return
	}

	if err := d.producer.Send(ctx, event.Order.ID, payload); err != nil {
		d.logger.Warn("failed to publish order event",
			logger.NewField("order_id", event.Order.ID),
			logger.NewField("type", string(event.Type)),
			logger.NewField("error", err))
	}
}

func (d *Dispatcher) send(ctx context.Context, intent NotificationIntent) {
	var err error
	if intent.Urgent {
		err = d.notifier.SendUrgentNotification(ctx, intent)
	} else {
		err = d.notifier.SendOrderNotification(ctx, intent)
	}
	if err != nil {
		d.logger.Warn("failed to send order notification",
			logger.NewField("recipient_id", intent.RecipientID),
			logger.NewField("recipient_kind", intent.RecipientKind.String()),
			logger.NewField("error", err))
	}
}
