package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"dispatch/internal/entities"
	"dispatch/internal/service/assignment"
)

const (
	bookingCodeLength   = 8
	bookingCodeAttempts = 5

	// No 0/O/1/I so codes survive being read over the phone.
	bookingCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Booking is the delivery order state machine: it creates orders through
// driver assignment and moves them through the status lifecycle. Every
// committed change produces events that the dispatcher delivers outside
// the transaction.
type Booking struct {
	orderRepository  OrderRepository
	driverRepository DriverRepository
	assignmentEngine AssignmentEngine
	etaFactory       DeliveryETAFactory
	txManager        TxManager
	dispatcher       EventDispatcher
	rand             Rand
}

func New(
	orderRepository OrderRepository,
	driverRepository DriverRepository,
	assignmentEngine AssignmentEngine,
	etaFactory DeliveryETAFactory,
	txManager TxManager,
	dispatcher EventDispatcher,
	rand Rand,
) *Booking {
	return &Booking{
		orderRepository:  orderRepository,
		driverRepository: driverRepository,
		assignmentEngine: assignmentEngine,
		etaFactory:       etaFactory,
		txManager:        txManager,
		dispatcher:       dispatcher,
		rand:             rand,
	}
}

type BookingRequest struct {
	Tenant        entities.Tenant
	PickupPoint   entities.Point
	CustomerPoint entities.Point
	LeadMinutes   int64
	CustomerID    int64
	StoreStaffID  int64
	StoreName     string
	CustomerName  string
}

type DeclineReason string

const (
	DeclineNoCoverage        DeclineReason = "no_coverage"
	DeclineNoEligibleDrivers DeclineReason = "no_eligible_drivers"
)

// BookingResult is either an accepted order or a typed decline. Declines
// are business answers, not errors: nothing was created.
type BookingResult struct {
	Declined      bool
	DeclineReason DeclineReason
	Order         *entities.DeliveryOrder
}

func (b *Booking) Book(ctx context.Context, request BookingRequest) (*BookingResult, error) {
	if err := validateBookingRequest(request); err != nil {
		return nil, err
	}

	assigned, err := b.assignmentEngine.AssignBestDriver(ctx, request.PickupPoint)
	if err != nil {
		if errors.Is(err, assignment.ErrNoCoverage) {
			return &BookingResult{Declined: true, DeclineReason: DeclineNoCoverage}, nil
		}
		if errors.Is(err, assignment.ErrNoEligibleDrivers) {
			return &BookingResult{Declined: true, DeclineReason: DeclineNoEligibleDrivers}, nil
		}
		return nil, fmt.Errorf("assign driver: %w", err)
	}

	terms, ok := assigned.Company.TermsForArea(assigned.Area.ID)
	if !ok {
		return nil, fmt.Errorf("company %d quotes no terms for area %d", assigned.Company.ID, assigned.Area.ID)
	}

	orderID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("generate order id: %w", err)
	}

	now := time.Now().UTC()
	orderEntity := entities.DeliveryOrder{
		ID:            orderID.String(),
		Tenant:        request.Tenant,
		PickupPoint:   request.PickupPoint,
		CustomerPoint: request.CustomerPoint,
		LeadMinutes:   request.LeadMinutes,
		AreaID:        assigned.Area.ID,
		CompanyID:     assigned.Company.ID,
		Driver: entities.DriverSnapshot{
			ID:    assigned.Driver.ID,
			Name:  assigned.Driver.Name,
			Phone: assigned.Driver.Phone,
		},
		Status:             entities.OrderWaitingForApproval,
		ExpectedDeliveryAt: b.etaFactory.CalculateExpectedDelivery(terms, request.LeadMinutes, now),
		CreatedAt:          now,
		CustomerID:         request.CustomerID,
		StoreStaffID:       request.StoreStaffID,
		StoreName:          request.StoreName,
		CustomerName:       request.CustomerName,
	}

	created, err := b.createWithFreshCode(ctx, orderEntity)
	if err != nil {
		return nil, err
	}

	b.dispatcher.Dispatch(ctx, []Event{orderCreatedEvent(*created, now)})

	return &BookingResult{Order: created}, nil
}

// createWithFreshCode retries the insert with a new booking code on a
// uniqueness collision. Each attempt is its own statement; a collided
// insert leaves nothing behind.
func (b *Booking) createWithFreshCode(ctx context.Context, orderEntity entities.DeliveryOrder) (*entities.DeliveryOrder, error) {
	for attempt := 0; attempt < bookingCodeAttempts; attempt++ {
		orderEntity.BookingCode = b.generateBookingCode()

		created, err := b.orderRepository.Create(ctx, orderEntity)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, ErrBookingCodeTaken) {
			return nil, fmt.Errorf("create order: %w", err)
		}
	}

	return nil, ErrBookingCodeTaken
}

func (b *Booking) generateBookingCode() string {
	code := make([]byte, bookingCodeLength)
	for i := range code {
		code[i] = bookingCodeAlphabet[b.rand.Intn(len(bookingCodeAlphabet))]
	}
	return string(code)
}

// Transition moves an order to newStatus. The read and the conditional
// update share a transaction, and the update carries the status observed
// at read time; a concurrent transition surfaces as ErrStatusConflict
// rather than being silently overwritten.
func (b *Booking) Transition(
	ctx context.Context,
	orderID string,
	newStatus entities.OrderStatusType,
	actor entities.ActorRole,
	reason string,
) (*entities.DeliveryOrder, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !newStatus.Valid() || newStatus == entities.OrderWaitingForApproval {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, newStatus)
	}
	if !isValidActor(actor) {
		return nil, ErrUnknownActor
	}

	var updated *entities.DeliveryOrder
	var previous entities.OrderStatusType
	now := time.Now().UTC()

	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := b.orderRepository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if current.Status.Terminal() {
			return ErrOrderTerminal
		}
		previous = current.Status

		modify := entities.DeliveryOrderModify{Status: &newStatus}
		switch newStatus {
		case entities.OrderApproved:
			modify.ApprovedAt = &now
		case entities.OrderCollectedFromSource:
			modify.StartedAt = &now
		case entities.OrderDelivered:
			modify.CompletedAt = &now
		default:
			modify.CancelledAt = &now
			modify.CancelledBy = &actor
			if reason != "" {
				modify.CancelReason = &reason
			}
		}

		updated, err = b.orderRepository.UpdateStatus(ctx, orderID, current.Status, modify)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.dispatcher.Dispatch(ctx, []Event{statusChangedEvent(*updated, previous, actor, now)})

	return updated, nil
}

// Reassign replaces the driver snapshot with a freshly resolved one and
// resets the order to approved so the new driver starts from a known
// point in the lifecycle.
func (b *Booking) Reassign(ctx context.Context, orderID string, newDriverID int64) (*entities.DeliveryOrder, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if newDriverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	var updated *entities.DeliveryOrder
	var previous entities.OrderStatusType
	var previousDriver entities.DriverSnapshot
	now := time.Now().UTC()

	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		driver, err := b.driverRepository.GetByID(ctx, newDriverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}

		current, err := b.orderRepository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if current.Status.Terminal() {
			return ErrOrderTerminal
		}
		previous = current.Status
		previousDriver = current.Driver

		approved := entities.OrderApproved
		snapshot := entities.DriverSnapshot{
			ID:    driver.ID,
			Name:  driver.Name,
			Phone: driver.Phone,
		}
		modify := entities.DeliveryOrderModify{
			Status:     &approved,
			Driver:     &snapshot,
			CompanyID:  &driver.CompanyID,
			ApprovedAt: &now,
		}

		updated, err = b.orderRepository.UpdateStatus(ctx, orderID, current.Status, modify)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.dispatcher.Dispatch(ctx, []Event{reassignedEvent(*updated, previous, previousDriver, now)})

	return updated, nil
}

func (b *Booking) GetOrder(ctx context.Context, orderID string) (*entities.DeliveryOrder, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	return b.orderRepository.GetByID(ctx, orderID)
}

func (b *Booking) GetOrderByBookingCode(ctx context.Context, code string) (*entities.DeliveryOrder, error) {
	if !isValidBookingCode(code) {
		return nil, ErrInvalidBookingCode
	}

	return b.orderRepository.GetByBookingCode(ctx, code)
}

func (b *Booking) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.DeliveryOrder, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *filter.Status)
	}

	return b.orderRepository.List(ctx, filter)
}

func (b *Booking) CountByStatus(ctx context.Context) ([]entities.OrderStatusCount, error) {
	return b.orderRepository.CountByStatus(ctx)
}
