package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aetheris/airline-platform/internal/domain"
)

// FlightRepository defines persistence access for flights.
type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
}

type flightRepository struct {
	pool *pgxpool.Pool
}

// NewFlightRepository returns a Postgres-backed implementation.
func NewFlightRepository(pool *pgxpool.Pool) FlightRepository {
	return &flightRepository{pool: pool}
}

func (r *flightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	const query = `
        INSERT INTO flights (id, code, origin, destination, aircraft_id, pilot_id,
            departure_date, departure_time, duration_minutes, status, base_price)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		flight.ID,
		flight.Code,
		flight.Origin,
		flight.Destination,
		flight.AircraftID,
		flight.PilotID,
		flight.DepartureDate,
		flight.DepartureTime,
		flight.DurationMinutes,
		flight.Status,
		flight.BasePrice,
	)
	return err
}

func (r *flightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	const query = `
        UPDATE flights SET code=$1, origin=$2, destination=$3, aircraft_id=$4, pilot_id=$5,
            departure_date=$6, departure_time=$7, duration_minutes=$8, status=$9, base_price=$10
        WHERE id=$11`

	cmd, err := r.pool.Exec(ctx, query,
		flight.Code,
		flight.Origin,
		flight.Destination,
		flight.AircraftID,
		flight.PilotID,
		flight.DepartureDate,
		flight.DepartureTime,
		flight.DurationMinutes,
		flight.Status,
		flight.BasePrice,
		flight.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *flightRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *flightRepository) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	const query = `
        SELECT id, code, origin, destination, aircraft_id, pilot_id,
            departure_date, departure_time, duration_minutes, status, base_price
        FROM flights WHERE id=$1`

	var f domain.Flight
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Code, &f.Origin, &f.Destination, &f.AircraftID, &f.PilotID,
		&f.DepartureDate, &f.DepartureTime, &f.DurationMinutes, &f.Status, &f.BasePrice,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *flightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	const query = `
        SELECT id, code, origin, destination, aircraft_id, pilot_id,
            departure_date, departure_time, duration_minutes, status, base_price
        FROM flights ORDER BY departure_date, departure_time`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flights []domain.Flight
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(
			&f.ID, &f.Code, &f.Origin, &f.Destination, &f.AircraftID, &f.PilotID,
			&f.DepartureDate, &f.DepartureTime, &f.DurationMinutes, &f.Status, &f.BasePrice,
		); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}
