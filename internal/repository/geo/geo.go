package geo

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) ListAreas(ctx context.Context) ([]entities.Area, error) {
	query := `
		SELECT id, name, polygon
		FROM service_areas
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected geo repository list areas error: %w", err)
	}
	defer rows.Close()

	var areas []entities.Area
	for rows.Next() {
		var areaDB AreaDB
		if err := rows.Scan(&areaDB.ID, &areaDB.Name, &areaDB.Polygon); err != nil {
			return nil, fmt.Errorf("unexpected geo repository scan area error: %w", err)
		}

		area, err := ToAreaDomain(&areaDB)
		if err != nil {
			return nil, fmt.Errorf("area %d: %w", areaDB.ID, err)
		}
		areas = append(areas, *area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected geo repository list areas error: %w", err)
	}

	return areas, nil
}

func (r *Repository) ListCompaniesByArea(ctx context.Context, areaID int64) ([]entities.Company, error) {
	query := `
		SELECT c.id, c.name,
		       t.area_id, t.min_price, t.max_price, t.min_eta_minutes, t.max_eta_minutes
		FROM delivery_companies c
		JOIN company_area_terms t ON t.company_id = c.id
		WHERE t.area_id = $1
	`

	rows, err := r.querier.Query(ctx, query, areaID)
	if err != nil {
		return nil, fmt.Errorf("unexpected geo repository list companies error: %w", err)
	}
	defer rows.Close()

	var companies []entities.Company
	for rows.Next() {
		var companyDB CompanyDB
		var termsDB CompanyTermsDB
		err := rows.Scan(
			&companyDB.ID,
			&companyDB.Name,
			&termsDB.AreaID,
			&termsDB.MinPrice,
			&termsDB.MaxPrice,
			&termsDB.MinETAMinutes,
			&termsDB.MaxETAMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected geo repository scan company error: %w", err)
		}

		companies = append(companies, entities.Company{
			ID:   companyDB.ID,
			Name: companyDB.Name,
			Terms: []entities.CompanyTerms{
				{
					AreaID:        termsDB.AreaID,
					MinPrice:      termsDB.MinPrice,
					MaxPrice:      termsDB.MaxPrice,
					MinETAMinutes: termsDB.MinETAMinutes,
					MaxETAMinutes: termsDB.MaxETAMinutes,
				},
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected geo repository list companies error: %w", err)
	}

	return companies, nil
}

func (r *Repository) ListCities(ctx context.Context) ([]entities.City, error) {
	query := `
		SELECT id, name, polygon
		FROM cities
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected geo repository list cities error: %w", err)
	}
	defer rows.Close()

	var cities []entities.City
	for rows.Next() {
		var cityDB CityDB
		if err := rows.Scan(&cityDB.ID, &cityDB.Name, &cityDB.Polygon); err != nil {
			return nil, fmt.Errorf("unexpected geo repository scan city error: %w", err)
		}

		city, err := ToCityDomain(&cityDB)
		if err != nil {
			return nil, fmt.Errorf("city %d: %w", cityDB.ID, err)
		}
		cities = append(cities, *city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected geo repository list cities error: %w", err)
	}

	return cities, nil
}
