package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Schema statements per service. Each binary runs only the tables it owns.
var (
	PersonsSchema = []string{
		`CREATE TABLE IF NOT EXISTS persons (
			id BIGSERIAL PRIMARY KEY,
			national_id VARCHAR(32) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone VARCHAR(32),
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			person_id BIGINT PRIMARY KEY REFERENCES persons(id) ON DELETE CASCADE,
			address VARCHAR(255),
			reservation_id VARCHAR(64)
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			person_id BIGINT PRIMARY KEY REFERENCES persons(id) ON DELETE CASCADE,
			department VARCHAR(100)
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			person_id BIGINT PRIMARY KEY REFERENCES persons(id) ON DELETE CASCADE,
			position VARCHAR(100),
			flight_hours INT NOT NULL DEFAULT 0
		)`,
	}

	FlightsSchema = []string{
		`CREATE TABLE IF NOT EXISTS flights (
			id VARCHAR(36) PRIMARY KEY,
			code VARCHAR(10) NOT NULL,
			origin VARCHAR(100) NOT NULL,
			destination VARCHAR(100) NOT NULL,
			aircraft_id VARCHAR(36) NOT NULL,
			pilot_id VARCHAR(36) NOT NULL,
			departure_date DATE NOT NULL,
			departure_time TIME NOT NULL,
			duration_minutes INT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'SCHEDULED',
			base_price NUMERIC(12,2) NOT NULL
		)`,
	}

	AircraftSchema = []string{
		`CREATE TABLE IF NOT EXISTS aircraft (
			id VARCHAR(36) PRIMARY KEY,
			model VARCHAR(100) NOT NULL,
			capacity INT NOT NULL,
			airline VARCHAR(100) NOT NULL,
			manufacture_year INT,
			status VARCHAR(20) NOT NULL DEFAULT 'ACTIVE'
		)`,
	}

	ReservationsSchema = []string{
		`CREATE TABLE IF NOT EXISTS reservations (
			id BIGSERIAL PRIMARY KEY,
			customer_name VARCHAR(255) NOT NULL,
			flight_id VARCHAR(36) NOT NULL,
			status VARCHAR(20) NOT NULL,
			seat_number VARCHAR(10) NOT NULL
		)`,
	}

	PaymentsSchema = []string{
		`CREATE TABLE IF NOT EXISTS payments (
			id BIGSERIAL PRIMARY KEY,
			reservation_id BIGINT NOT NULL,
			amount NUMERIC(12,2) NOT NULL,
			method VARCHAR(20) NOT NULL,
			status VARCHAR(20) NOT NULL,
			reference VARCHAR(36) NOT NULL UNIQUE
		)`,
	}

	NotificationsSchema = []string{
		`CREATE TABLE IF NOT EXISTS notifications (
			id BIGSERIAL PRIMARY KEY,
			person_id VARCHAR(64),
			email VARCHAR(255),
			title VARCHAR(255) NOT NULL,
			message TEXT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			read_at TIMESTAMPTZ
		)`,
	}
)

// RunMigrations executes the given schema statements in order.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger, statements []string) error {
	if pool == nil {
		logger.Warn("no database pool; skipping migrations")
		return nil
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	logger.Info("migrations applied", zap.Int("statements", len(statements)))
	return nil
}
