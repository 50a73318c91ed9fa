package order

import (
	"dispatch/internal/entities"
)

func ToDomain(o *OrderDB) *entities.DeliveryOrder {
	if o == nil {
		return nil
	}

	orderEntity := &entities.DeliveryOrder{
		ID:          o.ID,
		BookingCode: o.BookingCode,
		Tenant:      entities.Tenant(o.Tenant),

		PickupPoint:   entities.Point{Lat: o.PickupLat, Lng: o.PickupLng},
		CustomerPoint: entities.Point{Lat: o.CustomerLat, Lng: o.CustomerLng},
		LeadMinutes:   o.LeadMinutes,

		AreaID:    o.AreaID,
		CompanyID: o.CompanyID,
		Driver: entities.DriverSnapshot{
			ID:    o.DriverID,
			Name:  o.DriverName,
			Phone: o.DriverPhone,
		},

		Status:             entities.OrderStatusType(o.Status),
		ExpectedDeliveryAt: o.ExpectedDeliveryAt,

		CreatedAt:   o.CreatedAt,
		ApprovedAt:  o.ApprovedAt,
		StartedAt:   o.StartedAt,
		CompletedAt: o.CompletedAt,
		CancelledAt: o.CancelledAt,

		CustomerID:   o.CustomerID,
		StoreStaffID: o.StoreStaffID,
		StoreName:    o.StoreName,
		CustomerName: o.CustomerName,
	}

	if o.CancelReason != nil {
		orderEntity.CancelReason = *o.CancelReason
	}
	if o.CancelledBy != nil {
		orderEntity.CancelledBy = entities.ActorRole(*o.CancelledBy)
	}

	return orderEntity
}
