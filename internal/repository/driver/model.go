package driver

import "time"

// Phone, push_token, max_active_orders and the location pair are
// nullable columns, so their fields are pointers.
type DriverDB struct {
	ID              int64
	Name            string
	Phone           *string
	CompanyID       int64
	Active          bool
	Available       bool
	MaxActiveOrders *int64
	LocationLat     *float64
	LocationLng     *float64
	PushToken       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type DriverModifyDB struct {
	ID              *int64
	Name            *string
	Phone           *string
	CompanyID       *int64
	Active          *bool
	Available       *bool
	MaxActiveOrders *int64
	LocationLat     *float64
	LocationLng     *float64
	PushToken       *string
}
