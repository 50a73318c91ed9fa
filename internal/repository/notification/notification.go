package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	notificationservice "dispatch/internal/service/notification"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const notificationColumns = `id, recipient_id, recipient_kind, title, body, type,
	data, read, read_at, created_at, channels`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanNotification(row pgx.Row) (*NotificationDB, error) {
	var n NotificationDB
	err := row.Scan(
		&n.ID, &n.RecipientID, &n.RecipientKind, &n.Title, &n.Body, &n.Type,
		&n.Data, &n.Read, &n.ReadAt, &n.CreatedAt, &n.Channels,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *Repository) Create(ctx context.Context, notificationEntity entities.Notification) (*entities.Notification, error) {
	table, err := tableFor(notificationEntity.Tenant)
	if err != nil {
		return nil, err
	}

	data, err := encodeData(notificationEntity.Data)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}
	channels, err := encodeChannels(notificationEntity.Channels)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	query := `
		INSERT INTO ` + table + ` (
			id, recipient_id, recipient_kind, title, body, type,
			data, read, created_at, channels
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + notificationColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		notificationEntity.ID,
		notificationEntity.RecipientID,
		notificationEntity.RecipientKind.String(),
		notificationEntity.Title,
		notificationEntity.Body,
		notificationEntity.Type,
		data,
		notificationEntity.Read,
		notificationEntity.CreatedAt,
		channels,
	)

	notificationDB, err := scanNotification(row)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(notificationDB, notificationEntity.Tenant)
}

// UpdateChannelStatus overwrites one channel's delivery status on an
// already persisted notification.
func (r *Repository) UpdateChannelStatus(
	ctx context.Context,
	tenant entities.Tenant,
	id string,
	channel entities.NotificationChannel,
	status entities.ChannelDeliveryStatus,
) error {
	table, err := tableFor(tenant)
	if err != nil {
		return err
	}

	query := `
		UPDATE ` + table + `
		SET channels = jsonb_set(channels, $1, to_jsonb($2::text))
		WHERE id = $3
	`

	tag, err := r.querier.Exec(ctx, query, []string{channel.String()}, status.String(), id)
	if err != nil {
		return fmt.Errorf("unexpected notification repository update channel error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notificationservice.ErrNotificationNotFound
	}

	return nil
}

func (r *Repository) List(
	ctx context.Context,
	tenant entities.Tenant,
	recipientID int64,
	unreadOnly bool,
	limit, offset uint64,
) ([]entities.Notification, error) {
	table, err := tableFor(tenant)
	if err != nil {
		return nil, err
	}

	builder := qb.
		Select("id", "recipient_id", "recipient_kind", "title", "body", "type",
			"data", "read", "read_at", "created_at", "channels").
		From(table).
		Where(sq.Eq{"recipient_id": recipientID}).
		OrderBy("created_at DESC")

	if unreadOnly {
		builder = builder.Where(sq.Eq{"read": false})
	}
	if limit > 0 {
		builder = builder.Limit(limit)
	}
	if offset > 0 {
		builder = builder.Offset(offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	var notifications []entities.Notification
	for rows.Next() {
		notificationDB, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository scan error: %w", err)
		}
		notificationEntity, err := ToDomain(notificationDB, tenant)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository scan error: %w", err)
		}
		notifications = append(notifications, *notificationEntity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	return notifications, nil
}

func (r *Repository) MarkRead(ctx context.Context, tenant entities.Tenant, id string, readAt time.Time) (*entities.Notification, error) {
	table, err := tableFor(tenant)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE ` + table + `
		SET read = TRUE, read_at = $1
		WHERE id = $2
		RETURNING ` + notificationColumns

	notificationDB, err := scanNotification(r.querier.QueryRow(ctx, query, readAt, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notificationservice.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("unexpected notification repository mark read error: %w", err)
	}

	return ToDomain(notificationDB, tenant)
}
