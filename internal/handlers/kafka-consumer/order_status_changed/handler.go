package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/entities"
	notificationservice "dispatch/internal/service/notification"
	"dispatch/pkg/logger"
)

// statusChangedEvent is the subset of the order event payload this
// worker cares about.
type statusChangedEvent struct {
	Type         string `json:"type"`
	OrderID      string `json:"order_id"`
	BookingCode  string `json:"booking_code"`
	Status       string `json:"status"`
	DriverID     int64  `json:"driver_id"`
	StoreStaffID int64  `json:"store_staff_id"`
}

// Handler reacts to orders leaving the active set: the driver's cached
// availability is invalidated and the store staff who placed the order
// gets a closing notification.
type Handler struct {
	cache                    AvailabilityCache
	notifier                 Notifier
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, cache AvailabilityCache, notifier Notifier, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		cache:                    cache,
		notifier:                 notifier,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one Kafka message. It returns true when
// ConsumeClaim should stop (context cancelled, the message will be
// redelivered) and false to continue with the next message.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	status := entities.OrderStatusType(event.Status)
	if !status.Terminal() {
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.status.changed processing")

	if err := h.process(ctx, event, status); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			return true
		}
		msgLog.With(
			logger.NewField("error", err),
		).Warn("order.status.changed handler failed to process order")
	}

	sess.MarkMessage(message, "")
	return false
}

func (h *Handler) process(ctx context.Context, event statusChangedEvent, status entities.OrderStatusType) error {
	if event.DriverID > 0 {
		if err := h.cache.Invalidate(ctx, event.DriverID); err != nil {
			return err
		}
	}

	if event.StoreStaffID <= 0 {
		return nil
	}

	title := "Order delivered"
	body := "Order " + event.BookingCode + " reached the customer."
	if status.Cancelled() {
		title = "Order cancelled"
		body = "Order " + event.BookingCode + " was cancelled."
	}

	_, err := h.notifier.SendOrderNotification(ctx, notificationservice.SendRequest{
		RecipientID:   event.StoreStaffID,
		RecipientKind: entities.RecipientStaff,
		Tenant:        entities.TenantPartnerAdmin,
		Title:         title,
		Body:          body,
		Type:          "order_closed",
		Data: map[string]string{
			"order_id":     event.OrderID,
			"booking_code": event.BookingCode,
			"status":       event.Status,
		},
	})
	return err
}
