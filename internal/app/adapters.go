package app

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/kafka"
	"dispatch/internal/realtime/router"
	bookingService "dispatch/internal/service/booking"
	notificationService "dispatch/internal/service/notification"
)

// notificationSenderAdapter narrows the notification service to the
// fire-and-forget contract the order dispatcher needs.
type notificationSenderAdapter struct {
	service *notificationService.Service
}

func (a *notificationSenderAdapter) SendOrderNotification(ctx context.Context, intent bookingService.NotificationIntent) error {
	_, err := a.service.SendOrderNotification(ctx, sendRequestFromIntent(intent))
	return err
}

func (a *notificationSenderAdapter) SendUrgentNotification(ctx context.Context, intent bookingService.NotificationIntent) error {
	_, err := a.service.SendUrgentNotification(ctx, sendRequestFromIntent(intent))
	return err
}

func sendRequestFromIntent(intent bookingService.NotificationIntent) notificationService.SendRequest {
	return notificationService.SendRequest{
		RecipientID:   intent.RecipientID,
		RecipientKind: intent.RecipientKind,
		Tenant:        intent.Tenant,
		Title:         intent.Title,
		Body:          intent.Body,
		Type:          intent.Type,
		Data:          intent.Data,
	}
}

// eventProducerAdapter bridges the sarama sync producer to the
// dispatcher's context-aware contract. The sync producer carries its
// own timeouts, the context is not consulted.
type eventProducerAdapter struct {
	producer *kafka.Producer
}

func (a *eventProducerAdapter) Send(_ context.Context, key string, value []byte) error {
	return a.producer.Send(key, value)
}

// realtimeSenderAdapter narrows the router to the notification
// service's contract: the route is irrelevant there, but a dropped
// message must surface as an error so the channel is recorded failed.
type realtimeSenderAdapter struct {
	router *router.Router
}

func (a *realtimeSenderAdapter) SendToUser(ctx context.Context, userID int64, appType entities.AppType, payload []byte) error {
	delivery, err := a.router.SendToUser(ctx, userID, appType, payload)
	if err != nil {
		return err
	}
	if delivery.Dropped {
		return router.ErrMessageDropped
	}
	return nil
}
