package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	notificationservice "service/internal/service/notification"
)

const notificationColumns = `id, recipient_id, title, body, type, read, errand_id, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, notificationModify entities.NotificationModify) (*entities.Notification, error) {
	notificationModifyDB := FromDomainModify(&notificationModify)

	query := `
		INSERT INTO notifications (id, recipient_id, title, body, type, read, errand_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + notificationColumns

	var notificationDB NotificationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		notificationModifyDB.ID,
		notificationModifyDB.RecipientID,
		notificationModifyDB.Title,
		notificationModifyDB.Body,
		notificationModifyDB.Type,
		notificationModifyDB.Read,
		notificationModifyDB.ErrandID,
	).Scan(
		&notificationDB.ID,
		&notificationDB.RecipientID,
		&notificationDB.Title,
		&notificationDB.Body,
		&notificationDB.Type,
		&notificationDB.Read,
		&notificationDB.ErrandID,
		&notificationDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository append error: %w", err)
	}

	return ToDomain(&notificationDB), nil
}

func (r *Repository) MarkRead(ctx context.Context, id string) error {
	query := `
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected notification repository mark read error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return notificationservice.ErrNotificationNotFound
	}

	return nil
}

func (r *Repository) List(ctx context.Context, userID string) ([]entities.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	var notifications []entities.Notification
	for rows.Next() {
		var notificationDB NotificationDB
		err := rows.Scan(
			&notificationDB.ID,
			&notificationDB.RecipientID,
			&notificationDB.Title,
			&notificationDB.Body,
			&notificationDB.Type,
			&notificationDB.Read,
			&notificationDB.ErrandID,
			&notificationDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list scan error: %w", err)
		}
		notifications = append(notifications, *ToDomain(&notificationDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected notification repository list rows error: %w", err)
	}

	return notifications, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM notifications WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected notification repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return notificationservice.ErrNotificationNotFound
	}

	return nil
}

// GetByID is used by the push worker to re-read a notification before a
// delivery attempt.
func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE id = $1`

	var notificationDB NotificationDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&notificationDB.ID,
		&notificationDB.RecipientID,
		&notificationDB.Title,
		&notificationDB.Body,
		&notificationDB.Type,
		&notificationDB.Read,
		&notificationDB.ErrandID,
		&notificationDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notificationservice.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("unexpected notification repository getbyid error: %w", err)
	}

	return ToDomain(&notificationDB), nil
}
