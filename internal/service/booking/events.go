package booking

import (
	"time"

	"dispatch/internal/entities"
)

type EventType string

const (
	EventOrderCreated       EventType = "order.created"
	EventOrderStatusChanged EventType = "order.status.changed"
	EventOrderReassigned    EventType = "order.reassigned"
)

// Event records one committed state change together with the
// notifications it should trigger. The state machine only collects
// events; a Dispatcher delivers them after the transaction commits.
type Event struct {
	Type           EventType
	Order          entities.DeliveryOrder
	PreviousStatus entities.OrderStatusType
	Actor          entities.ActorRole
	OccurredAt     time.Time
	Notifications  []NotificationIntent
}

// NotificationIntent is one recipient-facing message an event asks for.
type NotificationIntent struct {
	RecipientID   int64
	RecipientKind entities.RecipientKind
	Tenant        entities.Tenant
	Title         string
	Body          string
	Type          string
	Data          map[string]string
	Urgent        bool
}

type statusMessage struct {
	Title string
	Body  string
}

// customerStatusMessages maps each status an order can enter after
// booking to the customer-facing message for it. The mapping is fixed:
// every transition into a given status always produces the same message.
var customerStatusMessages = map[entities.OrderStatusType]statusMessage{
	entities.OrderApproved:            {Title: "Order approved", Body: "A driver accepted your order and is heading to the store."},
	entities.OrderCollectedFromSource: {Title: "Order picked up", Body: "Your order was picked up and is on its way."},
	entities.OrderDelivered:           {Title: "Order delivered", Body: "Your order has been delivered."},
	entities.OrderCancelledByDriver:   {Title: "Order cancelled", Body: "The driver cancelled your order."},
	entities.OrderCancelledBySource:   {Title: "Order cancelled", Body: "The store cancelled your order."},
	entities.OrderCancelledByAdmin:    {Title: "Order cancelled", Body: "Your order was cancelled by support."},
}

func orderData(order entities.DeliveryOrder) map[string]string {
	return map[string]string{
		"order_id":     order.ID,
		"booking_code": order.BookingCode,
		"status":       order.Status.String(),
	}
}

func customerIntent(order entities.DeliveryOrder, message statusMessage, urgent bool) NotificationIntent {
	return NotificationIntent{
		RecipientID:   order.CustomerID,
		RecipientKind: entities.RecipientCustomer,
		Tenant:        entities.TenantCustomerApp,
		Title:         message.Title,
		Body:          message.Body,
		Type:          "order_status",
		Data:          orderData(order),
		Urgent:        urgent,
	}
}

func driverIntent(order entities.DeliveryOrder, driverID int64, message statusMessage, urgent bool) NotificationIntent {
	return NotificationIntent{
		RecipientID:   driverID,
		RecipientKind: entities.RecipientDriver,
		Tenant:        entities.TenantDeliveryCompany,
		Title:         message.Title,
		Body:          message.Body,
		Type:          "order_status",
		Data:          orderData(order),
		Urgent:        urgent,
	}
}

func orderCreatedEvent(order entities.DeliveryOrder, occurredAt time.Time) Event {
	return Event{
		Type:       EventOrderCreated,
		Order:      order,
		Actor:      entities.ActorSource,
		OccurredAt: occurredAt,
		Notifications: []NotificationIntent{
			customerIntent(order, statusMessage{
				Title: "Order received",
				Body:  "Your order was received and is waiting for a driver to approve it.",
			}, false),
			driverIntent(order, order.Driver.ID, statusMessage{
				Title: "New delivery assigned",
				Body:  "A new delivery is waiting for your approval.",
			}, true),
		},
	}
}

func statusChangedEvent(order entities.DeliveryOrder, previous entities.OrderStatusType, actor entities.ActorRole, occurredAt time.Time) Event {
	event := Event{
		Type:           EventOrderStatusChanged,
		Order:          order,
		PreviousStatus: previous,
		Actor:          actor,
		OccurredAt:     occurredAt,
	}

	if message, ok := customerStatusMessages[order.Status]; ok {
		event.Notifications = append(event.Notifications, customerIntent(order, message, order.Status.Cancelled()))
	}
	if order.Status.Cancelled() && actor != entities.ActorDriver {
		event.Notifications = append(event.Notifications, driverIntent(order, order.Driver.ID, statusMessage{
			Title: "Delivery cancelled",
			Body:  "A delivery assigned to you was cancelled.",
		}, true))
	}

	return event
}

func reassignedEvent(order entities.DeliveryOrder, previous entities.OrderStatusType, previousDriver entities.DriverSnapshot, occurredAt time.Time) Event {
	return Event{
		Type:           EventOrderReassigned,
		Order:          order,
		PreviousStatus: previous,
		Actor:          entities.ActorAdmin,
		OccurredAt:     occurredAt,
		Notifications: []NotificationIntent{
			driverIntent(order, previousDriver.ID, statusMessage{
				Title: "Delivery reassigned",
				Body:  "A delivery was reassigned to another driver.",
			}, false),
			driverIntent(order, order.Driver.ID, statusMessage{
				Title: "New delivery assigned",
				Body:  "A delivery was reassigned to you and is waiting for pickup.",
			}, true),
			customerIntent(order, statusMessage{
				Title: "Driver updated",
				Body:  "A different driver will deliver your order.",
			}, false),
		},
	}
}
