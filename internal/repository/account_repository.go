package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aetheris/airline-platform/internal/domain"
)

// UserRepository persists customer attributes attached to a person.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByPersonID(ctx context.Context, personID int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// AdminRepository persists admin attributes attached to a person.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByPersonID(ctx context.Context, personID int64) (*domain.Admin, error)
	List(ctx context.Context) ([]domain.Admin, error)
}

// EmployeeRepository persists crew attributes attached to a person.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByPersonID(ctx context.Context, personID int64) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
}

type userRepository struct{ pool *pgxpool.Pool }
type adminRepository struct{ pool *pgxpool.Pool }
type employeeRepository struct{ pool *pgxpool.Pool }

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

// NewAdminRepository returns a Postgres-backed implementation.
func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &adminRepository{pool: pool}
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `INSERT INTO users (person_id, address, reservation_id) VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(ctx, query, user.PersonID, user.Address, user.ReservationID)
	return err
}

func (r *userRepository) GetByPersonID(ctx context.Context, personID int64) (*domain.User, error) {
	const query = `SELECT person_id, address, reservation_id FROM users WHERE person_id=$1`
	var u domain.User
	if err := r.pool.QueryRow(ctx, query, personID).Scan(&u.PersonID, &u.Address, &u.ReservationID); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT person_id, address, reservation_id FROM users ORDER BY person_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.PersonID, &u.Address, &u.ReservationID); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	const query = `INSERT INTO admins (person_id, department) VALUES ($1, $2)`
	_, err := r.pool.Exec(ctx, query, admin.PersonID, admin.Department)
	return err
}

func (r *adminRepository) GetByPersonID(ctx context.Context, personID int64) (*domain.Admin, error) {
	const query = `SELECT person_id, department FROM admins WHERE person_id=$1`
	var a domain.Admin
	if err := r.pool.QueryRow(ctx, query, personID).Scan(&a.PersonID, &a.Department); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) List(ctx context.Context) ([]domain.Admin, error) {
	rows, err := r.pool.Query(ctx, `SELECT person_id, department FROM admins ORDER BY person_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []domain.Admin
	for rows.Next() {
		var a domain.Admin
		if err := rows.Scan(&a.PersonID, &a.Department); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	const query = `INSERT INTO employees (person_id, position, flight_hours) VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(ctx, query, employee.PersonID, employee.Position, employee.FlightHours)
	return err
}

func (r *employeeRepository) GetByPersonID(ctx context.Context, personID int64) (*domain.Employee, error) {
	const query = `SELECT person_id, position, flight_hours FROM employees WHERE person_id=$1`
	var e domain.Employee
	if err := r.pool.QueryRow(ctx, query, personID).Scan(&e.PersonID, &e.Position, &e.FlightHours); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.pool.Query(ctx, `SELECT person_id, position, flight_hours FROM employees ORDER BY person_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.PersonID, &e.Position, &e.FlightHours); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
