package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/aetheris/airline-platform/internal/api/dto"
	"github.com/aetheris/airline-platform/internal/domain"
	"github.com/aetheris/airline-platform/internal/service"
	apperrors "github.com/aetheris/airline-platform/pkg/util"
)

// AccountsHandler exposes the user, admin and employee account endpoints.
type AccountsHandler struct {
	persons *service.PersonService
}

// NewAccountsHandler constructs the handler.
func NewAccountsHandler(persons *service.PersonService) *AccountsHandler {
	return &AccountsHandler{persons: persons}
}

// SaveUser handles POST /api/users/save, the unauthenticated customer
// registration path.
func (h *AccountsHandler) SaveUser(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" {
		return fiber.NewError(http.StatusBadRequest, "first_name, email, password required")
	}

	person := &domain.Person{
		NationalID: req.NationalID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Email:      req.Email,
	}
	if err := h.persons.RegisterUser(c.Context(), person, req.Address, req.Password); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromPerson(person)})
}

// SaveAdmin handles POST /api/admins/save.
func (h *AccountsHandler) SaveAdmin(c *fiber.Ctx) error {
	var req dto.RegisterAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" {
		return fiber.NewError(http.StatusBadRequest, "first_name, email, password required")
	}

	person := &domain.Person{
		NationalID: req.NationalID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Email:      req.Email,
	}
	if err := h.persons.RegisterAdmin(c.Context(), person, req.Department, req.Password); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromPerson(person)})
}

// SaveEmployee handles POST /api/employees/save.
func (h *AccountsHandler) SaveEmployee(c *fiber.Ctx) error {
	var req dto.RegisterEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" {
		return fiber.NewError(http.StatusBadRequest, "first_name, email, password required")
	}

	person := &domain.Person{
		NationalID: req.NationalID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Email:      req.Email,
	}
	if err := h.persons.RegisterEmployee(c.Context(), person, req.Position, req.FlightHours, req.Password); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromPerson(person)})
}

// ListUsers handles GET /api/users.
func (h *AccountsHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.persons.ListUsers(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": users})
}

// ListAdmins handles GET /api/admins.
func (h *AccountsHandler) ListAdmins(c *fiber.Ctx) error {
	admins, err := h.persons.ListAdmins(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": admins})
}

// ListEmployees handles GET /api/employees.
func (h *AccountsHandler) ListEmployees(c *fiber.Ctx) error {
	employees, err := h.persons.ListEmployees(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": employees})
}
