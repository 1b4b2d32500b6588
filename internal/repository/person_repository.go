package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aetheris/airline-platform/internal/domain"
)

// PersonRepository defines persistence access for base identity records.
type PersonRepository interface {
	Create(ctx context.Context, person *domain.Person) error
	Update(ctx context.Context, person *domain.Person) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Person, error)
	GetByEmail(ctx context.Context, email string) (*domain.Person, error)
	List(ctx context.Context) ([]domain.Person, error)
	Count(ctx context.Context) (int64, error)
}

type personRepository struct {
	pool *pgxpool.Pool
}

// NewPersonRepository returns a Postgres-backed implementation.
func NewPersonRepository(pool *pgxpool.Pool) PersonRepository {
	return &personRepository{pool: pool}
}

func (r *personRepository) Create(ctx context.Context, person *domain.Person) error {
	const query = `
        INSERT INTO persons (national_id, first_name, last_name, phone, email, password_hash, role)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		person.NationalID,
		person.FirstName,
		person.LastName,
		person.Phone,
		person.Email,
		person.PasswordHash,
		person.Role,
	).Scan(&person.ID)
}

func (r *personRepository) Update(ctx context.Context, person *domain.Person) error {
	const query = `
        UPDATE persons SET national_id=$1, first_name=$2, last_name=$3, phone=$4, email=$5, role=$6
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		person.NationalID,
		person.FirstName,
		person.LastName,
		person.Phone,
		person.Email,
		person.Role,
		person.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *personRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE persons SET password_hash=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *personRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM persons WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *personRepository) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	const query = `
        SELECT id, national_id, first_name, last_name, phone, email, password_hash, role
        FROM persons WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *personRepository) GetByEmail(ctx context.Context, email string) (*domain.Person, error) {
	const query = `
        SELECT id, national_id, first_name, last_name, phone, email, password_hash, role
        FROM persons WHERE email=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *personRepository) List(ctx context.Context) ([]domain.Person, error) {
	const query = `
        SELECT id, national_id, first_name, last_name, phone, email, password_hash, role
        FROM persons ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var persons []domain.Person
	for rows.Next() {
		var p domain.Person
		if err := rows.Scan(&p.ID, &p.NationalID, &p.FirstName, &p.LastName, &p.Phone, &p.Email, &p.PasswordHash, &p.Role); err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}
	return persons, rows.Err()
}

func (r *personRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM persons`).Scan(&count)
	return count, err
}

func (r *personRepository) scanOne(row pgx.Row) (*domain.Person, error) {
	var p domain.Person
	if err := row.Scan(&p.ID, &p.NationalID, &p.FirstName, &p.LastName, &p.Phone, &p.Email, &p.PasswordHash, &p.Role); err != nil {
		return nil, err
	}
	return &p, nil
}
