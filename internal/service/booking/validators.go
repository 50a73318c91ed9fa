package booking

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidBookingCode(code string) bool {
	return strings.TrimSpace(code) != ""
}

func isValidActor(actor entities.ActorRole) bool {
	switch actor {
	case entities.ActorDriver, entities.ActorSource, entities.ActorAdmin, entities.ActorSystem:
		return true
	default:
		return false
	}
}

func validateBookingRequest(request BookingRequest) error {
	if !request.Tenant.Valid() {
		return ErrUnknownTenant
	}
	if !request.PickupPoint.Valid() || !request.CustomerPoint.Valid() {
		return ErrInvalidCoordinates
	}
	if request.LeadMinutes <= 0 {
		return ErrInvalidLeadTime
	}
	if request.CustomerID <= 0 || request.StoreStaffID <= 0 {
		return ErrInvalidRecipient
	}
	return nil
}
