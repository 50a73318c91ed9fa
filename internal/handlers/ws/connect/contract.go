//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=connect_test
package connect

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/internal/realtime/registry"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Principal is the identity a connection token resolves to.
type Principal struct {
	UserID  int64
	Tenant  entities.Tenant
	AppType entities.AppType
}

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*Principal, error)
}

type ConnRegistry interface {
	Register(ctx context.Context, conn *registry.Conn) error
	Unregister(ctx context.Context, connID string)
	Touch(ctx context.Context, connID string)
}

type QueueFlusher interface {
	FlushQueued(ctx context.Context, userID int64, appType entities.AppType) (int, error)
}
