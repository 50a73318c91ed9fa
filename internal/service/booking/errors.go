package booking

import "errors"

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidLeadTime    = errors.New("invalid lead time")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidDriverID    = errors.New("invalid driver id")
	ErrInvalidRecipient   = errors.New("invalid recipient id")
	ErrInvalidBookingCode = errors.New("invalid booking code")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrUnknownTenant      = errors.New("unknown tenant")
	ErrUnknownActor       = errors.New("unknown actor")

	ErrOrderNotFound    = errors.New("order not found")
	ErrDriverNotFound   = errors.New("driver not found")
	ErrBookingCodeTaken = errors.New("booking code already taken")
	ErrStatusConflict   = errors.New("order status changed concurrently")
	ErrOrderTerminal    = errors.New("order already in terminal status")
)
