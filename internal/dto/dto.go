package dto

import (
	"time"

	"dispatch/internal/entities"
)

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type BookingCreate struct {
	Tenant        string `json:"tenant"`
	PickupPoint   Point  `json:"pickup_point"`
	CustomerPoint Point  `json:"customer_point"`
	LeadMinutes   int64  `json:"lead_minutes"`
	CustomerID    int64  `json:"customer_id"`
	StoreStaffID  int64  `json:"store_staff_id"`
	StoreName     string `json:"store_name"`
	CustomerName  string `json:"customer_name"`
}

type BookingDeclined struct {
	Declined bool   `json:"declined"`
	Reason   string `json:"reason"`
}

type DriverSnapshot struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Order struct {
	ID                 string         `json:"id"`
	BookingCode        string         `json:"booking_code"`
	Tenant             string         `json:"tenant"`
	PickupPoint        Point          `json:"pickup_point"`
	CustomerPoint      Point          `json:"customer_point"`
	LeadMinutes        int64          `json:"lead_minutes"`
	AreaID             int64          `json:"area_id"`
	CompanyID          int64          `json:"company_id"`
	Driver             DriverSnapshot `json:"driver"`
	Status             string         `json:"status"`
	ExpectedDeliveryAt time.Time      `json:"expected_delivery_at"`
	CreatedAt          time.Time      `json:"created_at"`
	ApprovedAt         *time.Time     `json:"approved_at,omitempty"`
	StartedAt          *time.Time     `json:"started_at,omitempty"`
	CompletedAt        *time.Time     `json:"completed_at,omitempty"`
	CancelledAt        *time.Time     `json:"cancelled_at,omitempty"`
	CancelReason       string         `json:"cancel_reason,omitempty"`
	CancelledBy        string         `json:"cancelled_by,omitempty"`
	CustomerID         int64          `json:"customer_id"`
	StoreStaffID       int64          `json:"store_staff_id"`
	StoreName          string         `json:"store_name"`
	CustomerName       string         `json:"customer_name"`
}

func OrderFromEntity(order entities.DeliveryOrder) Order {
	return Order{
		ID:          order.ID,
		BookingCode: order.BookingCode,
		Tenant:      order.Tenant.String(),
		PickupPoint: Point{
			Lat: order.PickupPoint.Lat,
			Lng: order.PickupPoint.Lng,
		},
		CustomerPoint: Point{
			Lat: order.CustomerPoint.Lat,
			Lng: order.CustomerPoint.Lng,
		},
		LeadMinutes: order.LeadMinutes,
		AreaID:      order.AreaID,
		CompanyID:   order.CompanyID,
		Driver: DriverSnapshot{
			ID:    order.Driver.ID,
			Name:  order.Driver.Name,
			Phone: order.Driver.Phone,
		},
		Status:             order.Status.String(),
		ExpectedDeliveryAt: order.ExpectedDeliveryAt,
		CreatedAt:          order.CreatedAt,
		ApprovedAt:         order.ApprovedAt,
		StartedAt:          order.StartedAt,
		CompletedAt:        order.CompletedAt,
		CancelledAt:        order.CancelledAt,
		CancelReason:       order.CancelReason,
		CancelledBy:        order.CancelledBy.String(),
		CustomerID:         order.CustomerID,
		StoreStaffID:       order.StoreStaffID,
		StoreName:          order.StoreName,
		CustomerName:       order.CustomerName,
	}
}

type OrderStatusUpdate struct {
	Status string `json:"status"`
	Actor  string `json:"actor"`
	Reason string `json:"reason,omitempty"`
}

type OrderReassign struct {
	DriverID int64 `json:"driver_id"`
}

type OrderStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type OrderList struct {
	Orders []Order            `json:"orders"`
	Counts []OrderStatusCount `json:"counts,omitempty"`
}

type DriverLocationUpdate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Notification struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Type      string            `json:"type"`
	Data      map[string]string `json:"data,omitempty"`
	Read      bool              `json:"read"`
	ReadAt    *time.Time        `json:"read_at,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	Channels  map[string]string `json:"channels"`
}

func NotificationFromEntity(notificationEntity entities.Notification) Notification {
	channels := make(map[string]string, len(notificationEntity.Channels))
	for channel, status := range notificationEntity.Channels {
		channels[channel.String()] = status.String()
	}

	return Notification{
		ID:        notificationEntity.ID,
		Title:     notificationEntity.Title,
		Body:      notificationEntity.Body,
		Type:      notificationEntity.Type,
		Data:      notificationEntity.Data,
		Read:      notificationEntity.Read,
		ReadAt:    notificationEntity.ReadAt,
		CreatedAt: notificationEntity.CreatedAt,
		Channels:  channels,
	}
}

type NotificationList struct {
	Notifications []Notification `json:"notifications"`
}

type PingResponse struct {
	Message string `json:"message"`
}
