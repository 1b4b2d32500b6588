package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/aetheris/airline-platform/internal/auth"
	"github.com/aetheris/airline-platform/internal/client"
	"github.com/aetheris/airline-platform/internal/config"
	"github.com/aetheris/airline-platform/internal/domain"
	"github.com/aetheris/airline-platform/internal/repository"
)

// PersonService coordinates identity records and the login flow.
type PersonService struct {
	persons    repository.PersonRepository
	users      repository.UserRepository
	admins     repository.AdminRepository
	employees  repository.EmployeeRepository
	codec      *auth.TokenCodec
	notifier   *client.NotificationClient
	bcryptCost int
}

// PersonDependencies encapsulates repo requirements for the person service.
type PersonDependencies struct {
	PersonRepo   repository.PersonRepository
	UserRepo     repository.UserRepository
	AdminRepo    repository.AdminRepository
	EmployeeRepo repository.EmployeeRepository
	Notifier     *client.NotificationClient
}

// NewPersonService builds the service.
func NewPersonService(cfg config.Config, deps PersonDependencies) *PersonService {
	return &PersonService{
		persons:    deps.PersonRepo,
		users:      deps.UserRepo,
		admins:     deps.AdminRepo,
		employees:  deps.EmployeeRepo,
		codec:      auth.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLSeconds),
		notifier:   deps.Notifier,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// TokenCodec exposes the codec so the login handler can keep the cookie
// Max-Age consistent with the token expiry.
func (s *PersonService) TokenCodec() *auth.TokenCodec {
	return s.codec
}

// Login authenticates a person and issues a fresh session token.
func (s *PersonService) Login(ctx context.Context, email, password string) (*domain.Person, string, error) {
	person, err := s.persons.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", errors.New("invalid credentials")
	}
	if err := auth.ComparePassword(person.PasswordHash, password); err != nil {
		return nil, "", errors.New("invalid credentials")
	}
	token, err := s.codec.Issue(person.ID, person.Role, person.Email)
	if err != nil {
		return nil, "", err
	}
	return person, token, nil
}

// RegisterUser creates a customer account: a person plus its user row. This is
// one of the deliberately unauthenticated creation paths.
func (s *PersonService) RegisterUser(ctx context.Context, person *domain.Person, address string, password string) error {
	person.Role = domain.RoleCustomer
	if err := s.createPerson(ctx, person, password); err != nil {
		return err
	}
	if err := s.users.Create(ctx, &domain.User{PersonID: person.ID, Address: address}); err != nil {
		return err
	}
	if s.notifier != nil {
		go s.notifier.SendWelcome(person.ID, person.Email, person.FirstName)
	}
	return nil
}

// RegisterAdmin creates an admin account.
func (s *PersonService) RegisterAdmin(ctx context.Context, person *domain.Person, department, password string) error {
	person.Role = domain.RoleAdmin
	if err := s.createPerson(ctx, person, password); err != nil {
		return err
	}
	return s.admins.Create(ctx, &domain.Admin{PersonID: person.ID, Department: department})
}

// RegisterEmployee creates a crew account.
func (s *PersonService) RegisterEmployee(ctx context.Context, person *domain.Person, position string, flightHours int, password string) error {
	person.Role = domain.RoleEmployee
	if err := s.createPerson(ctx, person, password); err != nil {
		return err
	}
	return s.employees.Create(ctx, &domain.Employee{PersonID: person.ID, Position: position, FlightHours: flightHours})
}

func (s *PersonService) createPerson(ctx context.Context, person *domain.Person, password string) error {
	if _, err := s.persons.GetByEmail(ctx, person.Email); err == nil {
		return errors.New("email already registered")
	} else if err != nil && err != pgx.ErrNoRows {
		return err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	person.PasswordHash = hash
	return s.persons.Create(ctx, person)
}

// GetPerson returns a person by id.
func (s *PersonService) GetPerson(ctx context.Context, id int64) (*domain.Person, error) {
	return s.persons.GetByID(ctx, id)
}

// GetPersonByEmail returns a person by email.
func (s *PersonService) GetPersonByEmail(ctx context.Context, email string) (*domain.Person, error) {
	return s.persons.GetByEmail(ctx, email)
}

// ListPersons returns all persons.
func (s *PersonService) ListPersons(ctx context.Context) ([]domain.Person, error) {
	return s.persons.List(ctx)
}

// CountPersons returns the number of persons.
func (s *PersonService) CountPersons(ctx context.Context) (int64, error) {
	return s.persons.Count(ctx)
}

// UpdatePerson updates a person's base record.
func (s *PersonService) UpdatePerson(ctx context.Context, person *domain.Person) error {
	return s.persons.Update(ctx, person)
}

// UpdatePassword re-hashes and stores a new password.
func (s *PersonService) UpdatePassword(ctx context.Context, id int64, password string) error {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	return s.persons.UpdatePassword(ctx, id, hash)
}

// DeletePerson removes a person and its attached account rows.
func (s *PersonService) DeletePerson(ctx context.Context, id int64) error {
	return s.persons.Delete(ctx, id)
}

// ListUsers returns all customer accounts.
func (s *PersonService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// ListAdmins returns all admin accounts.
func (s *PersonService) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	return s.admins.List(ctx)
}

// ListEmployees returns all crew accounts.
func (s *PersonService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}
