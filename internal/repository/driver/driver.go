package driver

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/service/booking"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const driverColumns = `id, name, phone, company_id, active, available, max_active_orders,
	location_lat, location_lng, push_token, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE id = $1`

	var driverDB DriverDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&driverDB.ID,
		&driverDB.Name,
		&driverDB.Phone,
		&driverDB.CompanyID,
		&driverDB.Active,
		&driverDB.Available,
		&driverDB.MaxActiveOrders,
		&driverDB.LocationLat,
		&driverDB.LocationLng,
		&driverDB.PushToken,
		&driverDB.CreatedAt,
		&driverDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository get error: %w", err)
	}

	return ToDomain(&driverDB), nil
}

// ListEligibleByCompanies returns every active and available driver
// affiliated with one of the given companies.
func (r *Repository) ListEligibleByCompanies(ctx context.Context, companyIDs []int64) ([]entities.Driver, error) {
	if len(companyIDs) == 0 {
		return nil, nil
	}

	builder := qb.
		Select("id", "name", "phone", "company_id", "active", "available", "max_active_orders",
			"location_lat", "location_lng", "push_token", "created_at", "updated_at").
		From("drivers").
		Where(sq.Eq{"company_id": companyIDs}).
		Where(sq.Eq{"active": true}).
		Where(sq.Eq{"available": true})

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository list eligible error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository list eligible error: %w", err)
	}
	defer rows.Close()

	var drivers []entities.Driver
	for rows.Next() {
		var driverDB DriverDB
		err := rows.Scan(
			&driverDB.ID,
			&driverDB.Name,
			&driverDB.Phone,
			&driverDB.CompanyID,
			&driverDB.Active,
			&driverDB.Available,
			&driverDB.MaxActiveOrders,
			&driverDB.LocationLat,
			&driverDB.LocationLng,
			&driverDB.PushToken,
			&driverDB.CreatedAt,
			&driverDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository scan error: %w", err)
		}
		drivers = append(drivers, *ToDomain(&driverDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected driver repository list eligible error: %w", err)
	}

	return drivers, nil
}

func (r *Repository) Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	modifyDB := FromDomainModify(&driverModifyEntity)

	builder := qb.
		Update("drivers")

	if modifyDB.Name != nil {
		builder = builder.Set("name", modifyDB.Name)
	}
	if modifyDB.Phone != nil {
		builder = builder.Set("phone", modifyDB.Phone)
	}
	if modifyDB.CompanyID != nil {
		builder = builder.Set("company_id", modifyDB.CompanyID)
	}
	if modifyDB.Active != nil {
		builder = builder.Set("active", modifyDB.Active)
	}
	if modifyDB.Available != nil {
		builder = builder.Set("available", modifyDB.Available)
	}
	if modifyDB.MaxActiveOrders != nil {
		builder = builder.Set("max_active_orders", modifyDB.MaxActiveOrders)
	}
	if modifyDB.LocationLat != nil && modifyDB.LocationLng != nil {
		builder = builder.
			Set("location_lat", modifyDB.LocationLat).
			Set("location_lng", modifyDB.LocationLng)
	}
	if modifyDB.PushToken != nil {
		builder = builder.Set("push_token", modifyDB.PushToken)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": modifyDB.ID}).
		Suffix("RETURNING " + driverColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	var driverDB DriverDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&driverDB.ID,
		&driverDB.Name,
		&driverDB.Phone,
		&driverDB.CompanyID,
		&driverDB.Active,
		&driverDB.Available,
		&driverDB.MaxActiveOrders,
		&driverDB.LocationLat,
		&driverDB.LocationLng,
		&driverDB.PushToken,
		&driverDB.CreatedAt,
		&driverDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(&driverDB), nil
}

func (r *Repository) UpdateLocation(ctx context.Context, id int64, location entities.Point) error {
	query := `
		UPDATE drivers
		SET location_lat = $2, location_lng = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id, location.Lat, location.Lng)
	if err != nil {
		return fmt.Errorf("unexpected driver repository update location error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return booking.ErrDriverNotFound
	}

	return nil
}
