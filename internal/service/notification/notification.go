package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/sync/errgroup"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/metrics"
	"dispatch/pkg/logger"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200

	expoTokenPrefix = "ExponentPushToken["
)

// Service fans a notification out over its requested channels. The
// record is persisted before any channel attempt, so a delivery outcome
// always has a record to land on; channel failures are isolated and the
// overall call succeeds as long as the record exists.
type Service struct {
	repository NotificationRepository
	recipients RecipientRepository
	realtime   RealtimeSender
	fcm        PushProvider
	expo       PushProvider
	email      EmailProvider
	sms        SMSProvider
	retrier    Retrier
	logger     serviceLogger
}

func New(
	repository NotificationRepository,
	recipients RecipientRepository,
	realtime RealtimeSender,
	fcm PushProvider,
	expo PushProvider,
	email EmailProvider,
	sms SMSProvider,
	retrier Retrier,
	log serviceLogger,
) *Service {
	return &Service{
		repository: repository,
		recipients: recipients,
		realtime:   realtime,
		fcm:        fcm,
		expo:       expo,
		email:      email,
		sms:        sms,
		retrier:    retrier,
		logger:     log,
	}
}

type SendRequest struct {
	RecipientID   int64
	RecipientKind entities.RecipientKind
	Tenant        entities.Tenant
	Title         string
	Body          string
	Type          string
	Data          map[string]string
	Channels      []entities.NotificationChannel
	Sound         string
	Priority      string
}

func (s *Service) Send(ctx context.Context, request SendRequest) (*entities.Notification, error) {
	if err := validateSendRequest(request); err != nil {
		return nil, err
	}

	profile, err := s.resolveRecipient(ctx, request.RecipientKind, request.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("resolve recipient: %w", err)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("generate notification id: %w", err)
	}

	channels := make(map[entities.NotificationChannel]entities.ChannelDeliveryStatus, len(request.Channels))
	for _, channel := range request.Channels {
		channels[channel] = entities.DeliveryPending
	}

	created, err := s.repository.Create(ctx, entities.Notification{
		ID:            id.String(),
		RecipientID:   request.RecipientID,
		RecipientKind: request.RecipientKind,
		Tenant:        request.Tenant,
		Title:         request.Title,
		Body:          request.Body,
		Type:          request.Type,
		Data:          request.Data,
		CreatedAt:     time.Now().UTC(),
		Channels:      channels,
	})
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	for _, channel := range request.Channels {
		channel := channel
		group.Go(func() error {
			status := entities.DeliverySent
			if deliverErr := s.deliver(groupCtx, channel, created.ID, profile, request); deliverErr != nil {
				status = entities.DeliveryFailed
				s.logger.Warn("notification channel delivery failed",
					logger.NewField("notification_id", created.ID),
					logger.NewField("channel", channel.String()),
					logger.NewField("error", deliverErr))
			}

			metrics.NotificationDeliveries.WithLabelValues(channel.String(), status.String()).Inc()

			if updateErr := s.repository.UpdateChannelStatus(groupCtx, request.Tenant, created.ID, channel, status); updateErr != nil {
				s.logger.Error("failed to persist channel delivery status",
					logger.NewField("notification_id", created.ID),
					logger.NewField("channel", channel.String()),
					logger.NewField("error", updateErr))
			}

			mu.Lock()
			created.Channels[channel] = status
			mu.Unlock()

			// Channel failures are isolated; the record is the result.
			return nil
		})
	}
	_ = group.Wait()

	return created, nil
}

// SendOrderNotification is Send with regular-delivery defaults.
func (s *Service) SendOrderNotification(ctx context.Context, request SendRequest) (*entities.Notification, error) {
	if len(request.Channels) == 0 {
		request.Channels = []entities.NotificationChannel{entities.ChannelRealtime, entities.ChannelPush}
	}
	if request.Sound == "" {
		request.Sound = "default"
	}
	if request.Priority == "" {
		request.Priority = "normal"
	}

	return s.Send(ctx, request)
}

// SendUrgentNotification is Send with attention-demanding defaults.
func (s *Service) SendUrgentNotification(ctx context.Context, request SendRequest) (*entities.Notification, error) {
	if len(request.Channels) == 0 {
		request.Channels = []entities.NotificationChannel{entities.ChannelRealtime, entities.ChannelPush, entities.ChannelSMS}
	}
	if request.Sound == "" {
		request.Sound = "alert"
	}
	request.Priority = "high"

	return s.Send(ctx, request)
}

type ListOptions struct {
	Limit      uint64
	Offset     uint64
	UnreadOnly bool
}

func (s *Service) GetUserNotifications(ctx context.Context, tenant entities.Tenant, recipientID int64, options ListOptions) ([]entities.Notification, error) {
	if !tenant.Valid() {
		return nil, ErrUnknownTenant
	}
	if recipientID <= 0 {
		return nil, ErrInvalidRecipient
	}

	limit := options.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	return s.repository.List(ctx, tenant, recipientID, options.UnreadOnly, limit, options.Offset)
}

func (s *Service) MarkAsRead(ctx context.Context, tenant entities.Tenant, id string) (*entities.Notification, error) {
	if !tenant.Valid() {
		return nil, ErrUnknownTenant
	}
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotificationNotFound
	}

	return s.repository.MarkRead(ctx, tenant, id, time.Now().UTC())
}

func (s *Service) resolveRecipient(ctx context.Context, kind entities.RecipientKind, id int64) (*entities.RecipientProfile, error) {
	switch kind {
	case entities.RecipientCustomer:
		return s.recipients.ResolveCustomer(ctx, id)
	case entities.RecipientDriver:
		return s.recipients.ResolveDriver(ctx, id)
	case entities.RecipientStaff:
		return s.recipients.ResolveStaff(ctx, id)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownRecipientKind, kind)
	}
}

func (s *Service) deliver(ctx context.Context, channel entities.NotificationChannel, notificationID string, profile *entities.RecipientProfile, request SendRequest) error {
	switch channel {
	case entities.ChannelRealtime:
		return s.deliverRealtime(ctx, notificationID, profile, request)
	case entities.ChannelPush:
		return s.deliverPush(ctx, profile, request)
	case entities.ChannelEmail:
		if profile.Email == "" {
			return ErrMissingEmail
		}
		return s.email.SendEmail(ctx, profile.Email, profile.Name, request.Title, request.Body)
	case entities.ChannelSMS:
		if profile.Phone == "" {
			return ErrMissingPhone
		}
		return s.sms.SendSMS(ctx, profile.Phone, request.Body)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownChannel, channel)
	}
}

type realtimePayload struct {
	ID    string            `json:"id"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Type  string            `json:"type"`
	Data  map[string]string `json:"data,omitempty"`
}

func (s *Service) deliverRealtime(ctx context.Context, notificationID string, profile *entities.RecipientProfile, request SendRequest) error {
	payload, err := json.Marshal(realtimePayload{
		ID:    notificationID,
		Title: request.Title,
		Body:  request.Body,
		Type:  request.Type,
		Data:  request.Data,
	})
	if err != nil {
		return fmt.Errorf("encode realtime payload: %w", err)
	}

	return s.realtime.SendToUser(ctx, profile.ID, appTypeForKind(profile.Kind), payload)
}

// deliverPush picks the provider by token format: Expo tokens carry a
// recognizable prefix, everything else goes to FCM. Delivery is retried
// a fixed number of times through the injected retrier.
func (s *Service) deliverPush(ctx context.Context, profile *entities.RecipientProfile, request SendRequest) error {
	if profile.PushToken == "" {
		return ErrMissingPushToken
	}

	provider := s.fcm
	if strings.HasPrefix(profile.PushToken, expoTokenPrefix) {
		provider = s.expo
	}

	message := PushMessage{
		Title:    request.Title,
		Body:     request.Body,
		Data:     request.Data,
		Sound:    request.Sound,
		Priority: request.Priority,
	}

	return s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return provider.SendPush(ctx, profile.PushToken, message)
	})
}

func appTypeForKind(kind entities.RecipientKind) entities.AppType {
	switch kind {
	case entities.RecipientDriver:
		return entities.AppDriver
	case entities.RecipientStaff:
		return entities.AppAdmin
	default:
		return entities.AppCustomer
	}
}
