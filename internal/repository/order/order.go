package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/booking"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, booking_code, tenant,
	pickup_lat, pickup_lng, customer_lat, customer_lng, lead_minutes,
	area_id, company_id, driver_id, driver_name, driver_phone,
	status, expected_delivery_at,
	created_at, approved_at, started_at, completed_at, cancelled_at,
	cancel_reason, cancelled_by, customer_id, store_staff_id, store_name, customer_name`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID, &o.BookingCode, &o.Tenant,
		&o.PickupLat, &o.PickupLng, &o.CustomerLat, &o.CustomerLng, &o.LeadMinutes,
		&o.AreaID, &o.CompanyID, &o.DriverID, &o.DriverName, &o.DriverPhone,
		&o.Status, &o.ExpectedDeliveryAt,
		&o.CreatedAt, &o.ApprovedAt, &o.StartedAt, &o.CompletedAt, &o.CancelledAt,
		&o.CancelReason, &o.CancelledBy, &o.CustomerID, &o.StoreStaffID, &o.StoreName, &o.CustomerName,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.DeliveryOrder) (*entities.DeliveryOrder, error) {
	query := `
		INSERT INTO delivery_orders (
			id, booking_code, tenant,
			pickup_lat, pickup_lng, customer_lat, customer_lng, lead_minutes,
			area_id, company_id, driver_id, driver_name, driver_phone,
			status, expected_delivery_at, created_at,
			customer_id, store_staff_id, store_name, customer_name
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.BookingCode,
		orderEntity.Tenant.String(),
		orderEntity.PickupPoint.Lat,
		orderEntity.PickupPoint.Lng,
		orderEntity.CustomerPoint.Lat,
		orderEntity.CustomerPoint.Lng,
		orderEntity.LeadMinutes,
		orderEntity.AreaID,
		orderEntity.CompanyID,
		orderEntity.Driver.ID,
		orderEntity.Driver.Name,
		orderEntity.Driver.Phone,
		orderEntity.Status.String(),
		orderEntity.ExpectedDeliveryAt,
		orderEntity.CreatedAt,
		orderEntity.CustomerID,
		orderEntity.StoreStaffID,
		orderEntity.StoreName,
		orderEntity.CustomerName,
	)

	orderDB, err := scanOrder(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, booking.ErrBookingCodeTaken
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.DeliveryOrder, error) {
	query := `SELECT ` + orderColumns + `
		FROM delivery_orders
		WHERE id = $1`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByBookingCode(ctx context.Context, code string) (*entities.DeliveryOrder, error) {
	query := `SELECT ` + orderColumns + `
		FROM delivery_orders
		WHERE booking_code = $1`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get by code error: %w", err)
	}

	return ToDomain(orderDB), nil
}

// UpdateStatus applies modify to the order only while its status is
// still expectedStatus. Zero affected rows with an existing order means
// a concurrent transition won, reported as ErrStatusConflict.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id string,
	expectedStatus entities.OrderStatusType,
	modify entities.DeliveryOrderModify,
) (*entities.DeliveryOrder, error) {
	builder := qb.
		Update("delivery_orders")

	if modify.Status != nil {
		builder = builder.Set("status", modify.Status.String())
	}
	if modify.Driver != nil {
		builder = builder.
			Set("driver_id", modify.Driver.ID).
			Set("driver_name", modify.Driver.Name).
			Set("driver_phone", modify.Driver.Phone)
	}
	if modify.CompanyID != nil {
		builder = builder.Set("company_id", modify.CompanyID)
	}
	if modify.ApprovedAt != nil {
		builder = builder.Set("approved_at", modify.ApprovedAt)
	}
	if modify.StartedAt != nil {
		builder = builder.Set("started_at", modify.StartedAt)
	}
	if modify.CompletedAt != nil {
		builder = builder.Set("completed_at", modify.CompletedAt)
	}
	if modify.CancelledAt != nil {
		builder = builder.Set("cancelled_at", modify.CancelledAt)
	}
	if modify.CancelReason != nil {
		builder = builder.Set("cancel_reason", modify.CancelReason)
	}
	if modify.CancelledBy != nil {
		builder = builder.Set("cancelled_by", modify.CancelledBy.String())
	}
	if modify.ExpectedDeliveryAt != nil {
		builder = builder.Set("expected_delivery_at", modify.ExpectedDeliveryAt)
	}

	builder = builder.
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"status": expectedStatus.String()}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrStatusConflict
		}
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.DeliveryOrder, error) {
	builder := qb.
		Select("id", "booking_code", "tenant",
			"pickup_lat", "pickup_lng", "customer_lat", "customer_lng", "lead_minutes",
			"area_id", "company_id", "driver_id", "driver_name", "driver_phone",
			"status", "expected_delivery_at",
			"created_at", "approved_at", "started_at", "completed_at", "cancelled_at",
			"cancel_reason", "cancelled_by", "customer_id", "store_staff_id", "store_name", "customer_name").
		From("delivery_orders").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.DriverID != nil {
		builder = builder.Where(sq.Eq{"driver_id": filter.DriverID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	var orders []entities.DeliveryOrder
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orders = append(orders, *ToDomain(orderDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return orders, nil
}

func (r *Repository) CountByStatus(ctx context.Context) ([]entities.OrderStatusCount, error) {
	query := `
		SELECT status, COUNT(*)
		FROM delivery_orders
		GROUP BY status
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count error: %w", err)
	}
	defer rows.Close()

	var counts []entities.OrderStatusCount
	for rows.Next() {
		var statusCount entities.OrderStatusCount
		var status string
		if err := rows.Scan(&status, &statusCount.Count); err != nil {
			return nil, fmt.Errorf("unexpected order repository count scan error: %w", err)
		}
		statusCount.Status = entities.OrderStatusType(status)
		counts = append(counts, statusCount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	return counts, nil
}

// ActiveOrderCounts returns the current active order count per driver.
// Drivers without active orders are present with a zero count.
func (r *Repository) ActiveOrderCounts(ctx context.Context, driverIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(driverIDs))
	for _, id := range driverIDs {
		counts[id] = 0
	}
	if len(driverIDs) == 0 {
		return counts, nil
	}

	builder := qb.
		Select("driver_id", "COUNT(*)").
		From("delivery_orders").
		Where(sq.Eq{"driver_id": driverIDs}).
		Where(sq.Eq{"status": activeStatusStrings()}).
		GroupBy("driver_id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository active counts error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository active counts error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var driverID, count int64
		if err := rows.Scan(&driverID, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository active counts scan error: %w", err)
		}
		counts[driverID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository active counts error: %w", err)
	}

	return counts, nil
}

// ListOverdue returns active orders whose expected delivery time passed
// before asOf.
func (r *Repository) ListOverdue(ctx context.Context, asOf time.Time) ([]entities.DeliveryOrder, error) {
	builder := qb.
		Select("id", "booking_code", "tenant",
			"pickup_lat", "pickup_lng", "customer_lat", "customer_lng", "lead_minutes",
			"area_id", "company_id", "driver_id", "driver_name", "driver_phone",
			"status", "expected_delivery_at",
			"created_at", "approved_at", "started_at", "completed_at", "cancelled_at",
			"cancel_reason", "cancelled_by", "customer_id", "store_staff_id", "store_name", "customer_name").
		From("delivery_orders").
		Where(sq.Lt{"expected_delivery_at": asOf}).
		Where(sq.Eq{"status": activeStatusStrings()})

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list overdue error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list overdue error: %w", err)
	}
	defer rows.Close()

	var orders []entities.DeliveryOrder
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orders = append(orders, *ToDomain(orderDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list overdue error: %w", err)
	}

	return orders, nil
}

func activeStatusStrings() []string {
	statuses := entities.ActiveOrderStatuses()
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}
