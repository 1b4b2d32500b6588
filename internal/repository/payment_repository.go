package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aetheris/airline-platform/internal/domain"
)

// PaymentRepository defines persistence access for payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]domain.Payment, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository returns a Postgres-backed implementation.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (reservation_id, amount, method, status, reference)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		payment.ReservationID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.Reference,
	).Scan(&payment.ID)
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE payments SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	const query = `
        SELECT id, reservation_id, amount, method, status, reference
        FROM payments WHERE id=$1`

	var p domain.Payment
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ReservationID, &p.Amount, &p.Method, &p.Status, &p.Reference,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) ListByReservation(ctx context.Context, reservationID int64) ([]domain.Payment, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, reservation_id, amount, method, status, reference
        FROM payments WHERE reservation_id=$1 ORDER BY id`, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.ReservationID, &p.Amount, &p.Method, &p.Status, &p.Reference); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
