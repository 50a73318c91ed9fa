package geo

import (
	"encoding/json"
	"fmt"

	"dispatch/internal/entities"
)

// decodePolygon parses the JSONB [[lat,lng],...] representation used in
// the areas and cities tables.
func decodePolygon(raw []byte) ([]entities.Point, error) {
	var pairs [][2]float64
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return nil, fmt.Errorf("decode polygon: %w", err)
	}

	points := make([]entities.Point, 0, len(pairs))
	for _, p := range pairs {
		points = append(points, entities.Point{Lat: p[0], Lng: p[1]})
	}
	return points, nil
}

func ToAreaDomain(a *AreaDB) (*entities.Area, error) {
	if a == nil {
		return nil, nil
	}
	polygon, err := decodePolygon(a.Polygon)
	if err != nil {
		return nil, err
	}
	return &entities.Area{
		ID:      a.ID,
		Name:    a.Name,
		Polygon: polygon,
	}, nil
}

func ToCityDomain(c *CityDB) (*entities.City, error) {
	if c == nil {
		return nil, nil
	}
	polygon, err := decodePolygon(c.Polygon)
	if err != nil {
		return nil, err
	}
	return &entities.City{
		ID:      c.ID,
		Name:    c.Name,
		Polygon: polygon,
	}, nil
}
