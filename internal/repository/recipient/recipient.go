package recipient

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	notificationservice "dispatch/internal/service/notification"
)

// Repository resolves delivery addressing for notification recipients.
// Each recipient kind lives in its own table, so resolution is a plain
// per-kind lookup instead of a polymorphic join.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) ResolveCustomer(ctx context.Context, id int64) (*entities.RecipientProfile, error) {
	query := `
		SELECT id, name, phone, email, push_token
		FROM customers
		WHERE id = $1
	`

	return r.resolve(ctx, query, id, entities.RecipientCustomer)
}

func (r *Repository) ResolveDriver(ctx context.Context, id int64) (*entities.RecipientProfile, error) {
	query := `
		SELECT id, name, phone, email, push_token
		FROM drivers
		WHERE id = $1
	`

	return r.resolve(ctx, query, id, entities.RecipientDriver)
}

func (r *Repository) ResolveStaff(ctx context.Context, id int64) (*entities.RecipientProfile, error) {
	query := `
		SELECT id, name, phone, email, push_token
		FROM store_staff
		WHERE id = $1
	`

	return r.resolve(ctx, query, id, entities.RecipientStaff)
}

func (r *Repository) resolve(
	ctx context.Context,
	query string,
	id int64,
	kind entities.RecipientKind,
) (*entities.RecipientProfile, error) {
	var profile entities.RecipientProfile
	var phone, email, pushToken *string

	err := r.querier.QueryRow(ctx, query, id).Scan(
		&profile.ID, &profile.Name, &phone, &email, &pushToken,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notificationservice.ErrRecipientNotFound
		}
		return nil, fmt.Errorf("unexpected recipient repository resolve error: %w", err)
	}

	profile.Kind = kind
	if phone != nil {
		profile.Phone = *phone
	}
	if email != nil {
		profile.Email = *email
	}
	if pushToken != nil {
		profile.PushToken = *pushToken
	}

	return &profile, nil
}
