package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aetheris/airline-platform/internal/domain"
)

// NotificationRepository defines persistence access for notification records.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	MarkRead(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Notification, error)
	List(ctx context.Context) ([]domain.Notification, error)
}

type notificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository returns a Postgres-backed implementation.
func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{pool: pool}
}

func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	const query = `
        INSERT INTO notifications (person_id, email, title, message, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	if notification.Status == "" {
		notification.Status = domain.NotificationStatusPending
	}
	return r.pool.QueryRow(ctx, query,
		notification.PersonID,
		notification.Email,
		notification.Title,
		notification.Message,
		notification.Status,
	).Scan(&notification.ID, &notification.CreatedAt)
}

func (r *notificationRepository) MarkRead(ctx context.Context, id int64) error {
	const query = `
        UPDATE notifications SET status=$1, read_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, domain.NotificationStatusRead, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	const query = `
        SELECT id, person_id, email, title, message, status, created_at, read_at
        FROM notifications WHERE id=$1`

	var n domain.Notification
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.PersonID, &n.Email, &n.Title, &n.Message, &n.Status, &n.CreatedAt, &n.ReadAt,
	); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, person_id, email, title, message, status, created_at, read_at
        FROM notifications ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.PersonID, &n.Email, &n.Title, &n.Message, &n.Status, &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}
