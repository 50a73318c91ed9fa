package router

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/internal/realtime/redisfabric"
	"dispatch/internal/realtime/registry"
	"dispatch/pkg/logger"
)

// ConnTable is the local connection view the router delivers through.
type ConnTable interface {
	LocalConns(userID int64, appType entities.AppType) []*registry.Conn
	RoomConns(appType entities.AppType) []*registry.Conn
}

// Fabric is the cross-process side of delivery: directory lookups,
// publishing to another process's bus and the offline queue.
type Fabric interface {
	ConnEntries(ctx context.Context, appType entities.AppType, userID int64) (map[string]string, error)
	Publish(ctx context.Context, processID string, envelope redisfabric.BusEnvelope) error
	EnqueueOffline(ctx context.Context, appType entities.AppType, userID int64, payload []byte) error
	DrainOffline(ctx context.Context, appType entities.AppType, userID int64) ([][]byte, error)
}

type routerLogger interface {
	Warn(msg string, fields ...logger.Field)
}
