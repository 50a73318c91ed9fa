package order

import "time"

type OrderDB struct {
	ID          string
	BookingCode string
	Tenant      string

	PickupLat   float64
	PickupLng   float64
	CustomerLat float64
	CustomerLng float64
	LeadMinutes int64

	AreaID      int64
	CompanyID   int64
	DriverID    int64
	DriverName  string
	DriverPhone string

	Status             string
	ExpectedDeliveryAt time.Time

	CreatedAt   time.Time
	ApprovedAt  *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time

	CancelReason *string
	CancelledBy  *string

	CustomerID   int64
	StoreStaffID int64
	StoreName    string
	CustomerName string
}
