package assignment

import (
	"context"
	"fmt"
	"sort"

	"dispatch/internal/entities"
)

// Engine picks the driver for a new booking. Selection is load-based:
// the least busy eligible driver in the enclosing service area wins, with
// a random tie-break so equally loaded drivers share work evenly.
type Engine struct {
	geoMatcher       GeoMatcher
	driverRepository DriverRepository
	orderRepository  OrderRepository
	rand             Rand
}

func New(
	geoMatcher GeoMatcher,
	driverRepository DriverRepository,
	orderRepository OrderRepository,
	rand Rand,
) *Engine {
	return &Engine{
		geoMatcher:       geoMatcher,
		driverRepository: driverRepository,
		orderRepository:  orderRepository,
		rand:             rand,
	}
}

// Assignment is the full selection outcome: the chosen driver, the
// service area that matched, and the driver's company with its terms for
// that area.
type Assignment struct {
	Driver           entities.Driver
	Area             entities.Area
	Company          entities.Company
	ActiveOrderCount int64
}

// FindEligibleDrivers returns the active, available drivers of every
// company serving the area enclosing the point, ordered by ascending
// active order count. Ties keep ascending driver id so the listing is
// deterministic.
func (e *Engine) FindEligibleDrivers(ctx context.Context, point entities.Point) ([]entities.DriverLoad, error) {
	loads, _, err := e.eligibleDriverLoads(ctx, point)
	if err != nil {
		return nil, err
	}

	sort.Slice(loads, func(i, j int) bool {
		if loads[i].ActiveOrderCount != loads[j].ActiveOrderCount {
			return loads[i].ActiveOrderCount < loads[j].ActiveOrderCount
		}
		return loads[i].Driver.ID < loads[j].Driver.ID
	})

	return loads, nil
}

// AssignBestDriver selects among the least loaded eligible drivers.
// Drivers at or over their personal cap are considered only when every
// eligible driver is saturated; within the final pool the minimum-load
// drivers are tied and one is chosen at random.
func (e *Engine) AssignBestDriver(ctx context.Context, point entities.Point) (*Assignment, error) {
	loads, lookup, err := e.eligibleDriverLoads(ctx, point)
	if err != nil {
		return nil, err
	}
	if len(loads) == 0 {
		return nil, ErrNoEligibleDrivers
	}

	pool := make([]entities.DriverLoad, 0, len(loads))
	for _, load := range loads {
		if load.ActiveOrderCount < load.Driver.ActiveOrderCap() {
			pool = append(pool, load)
		}
	}
	if len(pool) == 0 {
		pool = loads
	}

	minLoad := pool[0].ActiveOrderCount
	for _, load := range pool[1:] {
		if load.ActiveOrderCount < minLoad {
			minLoad = load.ActiveOrderCount
		}
	}

	var tied []entities.DriverLoad
	for _, load := range pool {
		if load.ActiveOrderCount == minLoad {
			tied = append(tied, load)
		}
	}

	chosen := tied[e.rand.Intn(len(tied))]

	company, ok := lookup.companies[chosen.Driver.CompanyID]
	if !ok {
		return nil, fmt.Errorf("driver %d belongs to company %d outside area %d",
			chosen.Driver.ID, chosen.Driver.CompanyID, lookup.area.ID)
	}

	return &Assignment{
		Driver:           chosen.Driver,
		Area:             lookup.area,
		Company:          company,
		ActiveOrderCount: chosen.ActiveOrderCount,
	}, nil
}

type areaLookup struct {
	area      entities.Area
	companies map[int64]entities.Company
}

func (e *Engine) eligibleDriverLoads(ctx context.Context, point entities.Point) ([]entities.DriverLoad, areaLookup, error) {
	if !point.Valid() {
		return nil, areaLookup{}, ErrInvalidPoint
	}

	area, err := e.geoMatcher.FindEnclosingArea(ctx, point)
	if err != nil {
		return nil, areaLookup{}, fmt.Errorf("find enclosing area: %w", err)
	}
	if area == nil {
		return nil, areaLookup{}, ErrNoCoverage
	}

	companies, err := e.geoMatcher.FindCompaniesServingArea(ctx, area.ID)
	if err != nil {
		return nil, areaLookup{}, fmt.Errorf("find companies serving area: %w", err)
	}

	lookup := areaLookup{
		area:      *area,
		companies: make(map[int64]entities.Company, len(companies)),
	}
	companyIDs := make([]int64, 0, len(companies))
	for _, company := range companies {
		lookup.companies[company.ID] = company
		companyIDs = append(companyIDs, company.ID)
	}

	drivers, err := e.driverRepository.ListEligibleByCompanies(ctx, companyIDs)
	if err != nil {
		return nil, areaLookup{}, fmt.Errorf("list eligible drivers: %w", err)
	}
	if len(drivers) == 0 {
		return nil, lookup, nil
	}

	driverIDs := make([]int64, 0, len(drivers))
	for _, driver := range drivers {
		driverIDs = append(driverIDs, driver.ID)
	}

	counts, err := e.orderRepository.ActiveOrderCounts(ctx, driverIDs)
	if err != nil {
		return nil, areaLookup{}, fmt.Errorf("count active orders: %w", err)
	}

	loads := make([]entities.DriverLoad, 0, len(drivers))
	for _, driver := range drivers {
		loads = append(loads, entities.DriverLoad{
			Driver:           driver,
			ActiveOrderCount: counts[driver.ID],
		})
	}

	return loads, lookup, nil
}
