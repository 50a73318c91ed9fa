package entities

import (
	"encoding/json"
	"time"
)

// AppType partitions real-time connections by client application.
type AppType string

const (
	AppCustomer AppType = "customer"
	AppDriver   AppType = "driver"
	AppAdmin    AppType = "admin"
)

func (a AppType) String() string {
	return string(a)
}

func (a AppType) Valid() bool {
	switch a {
	case AppCustomer, AppDriver, AppAdmin:
		return true
	default:
		return false
	}
}

// ConnectionRecord describes one live real-time session. The owning
// process keeps it in memory; a copy with a short expiry lives in the
// shared directory so other processes can discover it.
type ConnectionRecord struct {
	ConnID      string
	UserID      int64
	Tenant      Tenant
	AppType     AppType
	ProcessID   string
	ConnectedAt time.Time
	LastSeenAt  time.Time
}

// QueuedMessage is a message addressed to a user with no live connection
// anywhere; it waits in a durable per-user list until the next connect
// or until it expires.
type QueuedMessage struct {
	UserID   int64
	AppType  AppType
	Payload  json.RawMessage
	QueuedAt time.Time
}
