package entities

import "time"

type NotificationChannel string

const (
	ChannelRealtime NotificationChannel = "realtime"
	ChannelPush     NotificationChannel = "push"
	ChannelEmail    NotificationChannel = "email"
	ChannelSMS      NotificationChannel = "sms"
)

func (c NotificationChannel) String() string {
	return string(c)
}

func (c NotificationChannel) Valid() bool {
	switch c {
	case ChannelRealtime, ChannelPush, ChannelEmail, ChannelSMS:
		return true
	default:
		return false
	}
}

type ChannelDeliveryStatus string

const (
	DeliveryPending ChannelDeliveryStatus = "pending"
	DeliverySent    ChannelDeliveryStatus = "sent"
	DeliveryFailed  ChannelDeliveryStatus = "failed"
)

func (s ChannelDeliveryStatus) String() string {
	return string(s)
}

// Notification is the durable record of one fan-out. It is persisted
// before any channel attempt so every delivery outcome can be tied back
// to a record even when all channels fail.
type Notification struct {
	ID            string
	RecipientID   int64
	RecipientKind RecipientKind
	Tenant        Tenant
	Title         string
	Body          string
	Type          string
	Data          map[string]string
	Read          bool
	ReadAt        *time.Time
	CreatedAt     time.Time
	Channels      map[NotificationChannel]ChannelDeliveryStatus
}

// RecipientProfile is the resolved delivery addressing for one
// recipient: where each channel should reach them.
type RecipientProfile struct {
	ID        int64
	Kind      RecipientKind
	Name      string
	Phone     string
	Email     string
	PushToken string
}
