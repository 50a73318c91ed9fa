//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=geomatcher_test
package geomatcher

import (
	"context"

	"dispatch/internal/entities"
)

type GeoRepository interface {
	ListAreas(ctx context.Context) ([]entities.Area, error)
	ListCompaniesByArea(ctx context.Context, areaID int64) ([]entities.Company, error)
	ListCities(ctx context.Context) ([]entities.City, error)
}
