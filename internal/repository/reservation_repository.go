package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aetheris/airline-platform/internal/domain"
)

// ReservationRepository defines persistence access for bookings.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context) ([]domain.Reservation, error)
}

type reservationRepository struct {
	pool *pgxpool.Pool
}

// NewReservationRepository returns a Postgres-backed implementation.
func NewReservationRepository(pool *pgxpool.Pool) ReservationRepository {
	return &reservationRepository{pool: pool}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	const query = `
        INSERT INTO reservations (customer_name, flight_id, status, seat_number)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		reservation.CustomerName,
		reservation.FlightID,
		reservation.Status,
		reservation.SeatNumber,
	).Scan(&reservation.ID)
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE reservations SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reservations WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	const query = `
        SELECT id, customer_name, flight_id, status, seat_number
        FROM reservations WHERE id=$1`

	var res domain.Reservation
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&res.ID, &res.CustomerName, &res.FlightID, &res.Status, &res.SeatNumber,
	); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, customer_name, flight_id, status, seat_number
        FROM reservations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.CustomerName, &res.FlightID, &res.Status, &res.SeatNumber); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}
