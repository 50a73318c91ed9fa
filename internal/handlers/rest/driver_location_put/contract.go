//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_location_put_test
package driver_location_put

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// DriverStore is satisfied by the driver repository directly; a location
// ping carries no business rules beyond coordinate validation.
type DriverStore interface {
	UpdateLocation(ctx context.Context, id int64, location entities.Point) error
}
