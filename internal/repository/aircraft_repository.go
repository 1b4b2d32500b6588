package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aetheris/airline-platform/internal/domain"
)

// AircraftRepository defines persistence access for the fleet.
type AircraftRepository interface {
	Create(ctx context.Context, aircraft *domain.Aircraft) error
	Update(ctx context.Context, aircraft *domain.Aircraft) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Aircraft, error)
	List(ctx context.Context) ([]domain.Aircraft, error)
}

type aircraftRepository struct {
	pool *pgxpool.Pool
}

// NewAircraftRepository returns a Postgres-backed implementation.
func NewAircraftRepository(pool *pgxpool.Pool) AircraftRepository {
	return &aircraftRepository{pool: pool}
}

func (r *aircraftRepository) Create(ctx context.Context, aircraft *domain.Aircraft) error {
	const query = `
        INSERT INTO aircraft (id, model, capacity, airline, manufacture_year, status)
        VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		aircraft.ID,
		aircraft.Model,
		aircraft.Capacity,
		aircraft.Airline,
		aircraft.ManufactureYear,
		aircraft.Status,
	)
	return err
}

func (r *aircraftRepository) Update(ctx context.Context, aircraft *domain.Aircraft) error {
	const query = `
        UPDATE aircraft SET model=$1, capacity=$2, airline=$3, manufacture_year=$4, status=$5
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		aircraft.Model,
		aircraft.Capacity,
		aircraft.Airline,
		aircraft.ManufactureYear,
		aircraft.Status,
		aircraft.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *aircraftRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM aircraft WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *aircraftRepository) GetByID(ctx context.Context, id string) (*domain.Aircraft, error) {
	const query = `
        SELECT id, model, capacity, airline, manufacture_year, status
        FROM aircraft WHERE id=$1`

	var a domain.Aircraft
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Model, &a.Capacity, &a.Airline, &a.ManufactureYear, &a.Status,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *aircraftRepository) List(ctx context.Context) ([]domain.Aircraft, error) {
	const query = `
        SELECT id, model, capacity, airline, manufacture_year, status
        FROM aircraft ORDER BY model`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fleet []domain.Aircraft
	for rows.Next() {
		var a domain.Aircraft
		if err := rows.Scan(&a.ID, &a.Model, &a.Capacity, &a.Airline, &a.ManufactureYear, &a.Status); err != nil {
			return nil, err
		}
		fleet = append(fleet, a)
	}
	return fleet, rows.Err()
}
