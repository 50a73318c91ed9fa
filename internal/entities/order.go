package entities

import "time"

type OrderStatusType string

const (
	OrderWaitingForApproval  OrderStatusType = "waiting_for_approval"
	OrderApproved            OrderStatusType = "approved"
	OrderCollectedFromSource OrderStatusType = "collected_from_source"
	OrderDelivered           OrderStatusType = "delivered"
	OrderCancelledByDriver   OrderStatusType = "cancelled_by_driver"
	OrderCancelledBySource   OrderStatusType = "cancelled_by_source"
	OrderCancelledByAdmin    OrderStatusType = "cancelled_by_admin"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) Valid() bool {
	switch s {
	case OrderWaitingForApproval, OrderApproved, OrderCollectedFromSource,
		OrderDelivered, OrderCancelledByDriver, OrderCancelledBySource,
		OrderCancelledByAdmin:
		return true
	default:
		return false
	}
}

func (s OrderStatusType) Terminal() bool {
	switch s {
	case OrderDelivered, OrderCancelledByDriver, OrderCancelledBySource, OrderCancelledByAdmin:
		return true
	default:
		return false
	}
}

func (s OrderStatusType) Cancelled() bool {
	switch s {
	case OrderCancelledByDriver, OrderCancelledBySource, OrderCancelledByAdmin:
		return true
	default:
		return false
	}
}

// ActiveOrderStatuses is the subset counted against a driver's load.
func ActiveOrderStatuses() []OrderStatusType {
	return []OrderStatusType{
		OrderWaitingForApproval,
		OrderApproved,
		OrderCollectedFromSource,
	}
}

// ActorRole identifies who performed a transition.
type ActorRole string

const (
	ActorDriver ActorRole = "driver"
	ActorSource ActorRole = "source"
	ActorAdmin  ActorRole = "admin"
	ActorSystem ActorRole = "system"
)

func (r ActorRole) String() string {
	return string(r)
}

// DriverSnapshot is the driver identity frozen into an order at
// assignment time. It never follows later driver profile edits; only an
// explicit reassignment replaces it as a whole.
type DriverSnapshot struct {
	ID    int64
	Name  string
	Phone string
}

type DeliveryOrder struct {
	ID          string
	BookingCode string
	Tenant      Tenant

	PickupPoint   Point
	CustomerPoint Point
	LeadMinutes   int64

	AreaID    int64
	CompanyID int64
	Driver    DriverSnapshot

	Status             OrderStatusType
	ExpectedDeliveryAt time.Time

	CreatedAt   time.Time
	ApprovedAt  *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time

	CancelReason string
	CancelledBy  ActorRole

	CustomerID   int64
	StoreStaffID int64
	StoreName    string
	CustomerName string
}

type DeliveryOrderModify struct {
	ID                 *string
	Status             *OrderStatusType
	Driver             *DriverSnapshot
	CompanyID          *int64
	ApprovedAt         *time.Time
	StartedAt          *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancelReason       *string
	CancelledBy        *ActorRole
	ExpectedDeliveryAt *time.Time
}

// OrderFilter narrows order listings. Nil fields match everything.
type OrderFilter struct {
	Status   *OrderStatusType
	DriverID *int64
	Limit    uint64
	Offset   uint64
}

// OrderStatusCount is one row of the reporting aggregate.
type OrderStatusCount struct {
	Status OrderStatusType
	Count  int64
}
