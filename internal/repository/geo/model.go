package geo

import "time"

type AreaDB struct {
	ID        int64
	Name      string
	Polygon   []byte // JSONB array of [lat,lng] pairs
	CreatedAt time.Time
}

type CompanyDB struct {
	ID   int64
	Name string
}

type CompanyTermsDB struct {
	CompanyID     int64
	AreaID        int64
	MinPrice      int64
	MaxPrice      int64
	MinETAMinutes int64
	MaxETAMinutes int64
}

type CityDB struct {
	ID      int64
	Name    string
	Polygon []byte
}
