//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"dispatch/internal/entities"
)

type GeoMatcher interface {
	FindEnclosingArea(ctx context.Context, point entities.Point) (*entities.Area, error)
	FindCompaniesServingArea(ctx context.Context, areaID int64) ([]entities.Company, error)
}

type DriverRepository interface {
	ListEligibleByCompanies(ctx context.Context, companyIDs []int64) ([]entities.Driver, error)
}

type OrderRepository interface {
	ActiveOrderCounts(ctx context.Context, driverIDs []int64) (map[int64]int64, error)
}

// Rand is the tie-break source. Injected so tests can pin the choice and
// the uniformity property can be checked.
type Rand interface {
	Intn(n int) int
}
