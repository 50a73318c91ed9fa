package entities

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64
	Lng float64
}

func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Area is a polygon bounded delivery service zone.
type Area struct {
	ID      int64
	Name    string
	Polygon []Point
}

// CompanyTerms are the per-area price and ETA bounds a delivery company
// offers inside that area.
type CompanyTerms struct {
	AreaID        int64
	MinPrice      int64
	MaxPrice      int64
	MinETAMinutes int64
	MaxETAMinutes int64
}

// Company is a delivery company serving one or more areas.
type Company struct {
	ID    int64
	Name  string
	Terms []CompanyTerms
}

func (c Company) TermsForArea(areaID int64) (CompanyTerms, bool) {
	for _, t := range c.Terms {
		if t.AreaID == areaID {
			return t, true
		}
	}
	return CompanyTerms{}, false
}

// City is static reference geometry used for proximity lookups.
type City struct {
	ID      int64
	Name    string
	Polygon []Point
}
