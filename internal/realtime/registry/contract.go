package registry

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// Directory is the shared cross-process view of live connections.
type Directory interface {
	RegisterConn(ctx context.Context, appType entities.AppType, userID int64, connID, processID string) error
	UnregisterConn(ctx context.Context, appType entities.AppType, userID int64, connID string) error
	RefreshConn(ctx context.Context, appType entities.AppType, userID int64) error
	ConnEntries(ctx context.Context, appType entities.AppType, userID int64) (map[string]string, error)
}

// Session is the write side of one live socket.
type Session interface {
	Write(ctx context.Context, payload []byte) error
	Ping(ctx context.Context) error
	Close(reason string) error
}

type registryLogger interface {
	Warn(msg string, fields ...logger.Field)
}
