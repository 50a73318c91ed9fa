//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type NotificationRepository interface {
	Create(ctx context.Context, notificationEntity entities.Notification) (*entities.Notification, error)
	UpdateChannelStatus(ctx context.Context, tenant entities.Tenant, id string, channel entities.NotificationChannel, status entities.ChannelDeliveryStatus) error
	List(ctx context.Context, tenant entities.Tenant, recipientID int64, unreadOnly bool, limit, offset uint64) ([]entities.Notification, error)
	MarkRead(ctx context.Context, tenant entities.Tenant, id string, readAt time.Time) (*entities.Notification, error)
}

type RecipientRepository interface {
	ResolveCustomer(ctx context.Context, id int64) (*entities.RecipientProfile, error)
	ResolveDriver(ctx context.Context, id int64) (*entities.RecipientProfile, error)
	ResolveStaff(ctx context.Context, id int64) (*entities.RecipientProfile, error)
}

// RealtimeSender pushes a payload to a connected user. A queued delivery
// is a success from this service's point of view.
type RealtimeSender interface {
	SendToUser(ctx context.Context, userID int64, appType entities.AppType, payload []byte) error
}

type PushMessage struct {
	Title    string
	Body     string
	Data     map[string]string
	Sound    string
	Priority string
}

type PushProvider interface {
	SendPush(ctx context.Context, token string, message PushMessage) error
}

type EmailProvider interface {
	SendEmail(ctx context.Context, toEmail, toName, subject, body string) error
}

type SMSProvider interface {
	SendSMS(ctx context.Context, phone, body string) error
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
