package geomatcher

import (
	"context"
	"fmt"
	"math"
	"sort"

	"dispatch/internal/entities"
)

const earthRadiusKm = 6371.0

// Matcher answers pure geographic questions over the reference geometry:
// which service area encloses a point, which companies serve an area, and
// which cities lie near a point. It never mutates anything.
type Matcher struct {
	repository GeoRepository
}

func New(repository GeoRepository) *Matcher {
	return &Matcher{
		repository: repository,
	}
}

// FindEnclosingArea returns the first service area whose polygon contains
// the point, or nil when the point is outside every area. Being outside
// coverage is a domain answer, not an error.
func (m *Matcher) FindEnclosingArea(ctx context.Context, point entities.Point) (*entities.Area, error) {
	if !point.Valid() {
		return nil, ErrInvalidPoint
	}

	areas, err := m.repository.ListAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}

	for i := range areas {
		if pointInPolygon(point, areas[i].Polygon) {
			return &areas[i], nil
		}
	}

	return nil, nil
}

func (m *Matcher) FindCompaniesServingArea(ctx context.Context, areaID int64) ([]entities.Company, error) {
	companies, err := m.repository.ListCompaniesByArea(ctx, areaID)
	if err != nil {
		return nil, fmt.Errorf("list companies by area: %w", err)
	}

	return companies, nil
}

// FindNearbyCities returns cities whose polygon comes within maxKm of the
// point, nearest first. Distance is measured to the closest polygon vertex,
// which is accurate enough for city-scale geometry.
func (m *Matcher) FindNearbyCities(ctx context.Context, point entities.Point, maxKm float64) ([]entities.City, error) {
	if !point.Valid() {
		return nil, ErrInvalidPoint
	}
	if maxKm <= 0 {
		return nil, ErrInvalidDistance
	}

	cities, err := m.repository.ListCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}

	type cityDistance struct {
		city entities.City
		km   float64
	}

	var nearby []cityDistance
	for _, city := range cities {
		km, ok := minVertexDistanceKm(point, city.Polygon)
		if !ok || km > maxKm {
			continue
		}
		nearby = append(nearby, cityDistance{city: city, km: km})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].km < nearby[j].km
	})

	result := make([]entities.City, 0, len(nearby))
	for _, n := range nearby {
		result = append(result, n.city)
	}

	return result, nil
}

// pointInPolygon is a ray-casting test. A point exactly on an edge may land
// on either side; area polygons overlap at borders rarely enough that the
// first containing area wins.
func pointInPolygon(point entities.Point, polygon []entities.Point) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		pi, pj := polygon[i], polygon[j]
		if (pi.Lng > point.Lng) != (pj.Lng > point.Lng) {
			crossLat := (pj.Lat-pi.Lat)*(point.Lng-pi.Lng)/(pj.Lng-pi.Lng) + pi.Lat
			if point.Lat < crossLat {
				inside = !inside
			}
		}
		j = i
	}

	return inside
}

func minVertexDistanceKm(point entities.Point, polygon []entities.Point) (float64, bool) {
	if len(polygon) == 0 {
		return 0, false
	}

	minKm := math.MaxFloat64
	for _, vertex := range polygon {
		if km := haversineKm(point, vertex); km < minKm {
			minKm = km
		}
	}

	return minKm, true
}

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(a, b entities.Point) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
