package entities

import "time"

type Driver struct {
	ID              int64
	Name            string
	Phone           string
	CompanyID       int64
	Active          bool
	Available       bool
	MaxActiveOrders *int64
	Location        *Point
	PushToken       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ActiveOrderCap is the effective concurrent order cap; drivers without
// an administrator-set cap are effectively unlimited.
func (d Driver) ActiveOrderCap() int64 {
	if d.MaxActiveOrders == nil {
		return UnlimitedActiveOrders
	}
	return *d.MaxActiveOrders
}

const UnlimitedActiveOrders int64 = 1 << 30

type DriverModify struct {
	ID              *int64
	Name            *string
	Phone           *string
	CompanyID       *int64
	Active          *bool
	Available       *bool
	MaxActiveOrders *int64
	Location        *Point
	PushToken       *string
}

// DriverLoad pairs a driver with their current active order count.
type DriverLoad struct {
	Driver           Driver
	ActiveOrderCount int64
}
