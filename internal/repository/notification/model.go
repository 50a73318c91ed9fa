package notification

import "time"

type NotificationDB struct {
	ID            string
	RecipientID   int64
	RecipientKind string
	Title         string
	Body          string
	Type          string
	Data          []byte // JSONB
	Read          bool
	ReadAt        *time.Time
	CreatedAt     time.Time
	Channels      []byte // JSONB channel -> delivery status
}
