package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/aetheris/airline-platform/internal/api/dto"
	"github.com/aetheris/airline-platform/internal/auth"
	"github.com/aetheris/airline-platform/internal/config"
	"github.com/aetheris/airline-platform/internal/service"
	apperrors "github.com/aetheris/airline-platform/pkg/util"
)

// PersonsHandler exposes the person endpoints, including login and the
// reserved current-principal endpoint.
type PersonsHandler struct {
	persons *service.PersonService
	cookie  config.AuthConfig
}

// NewPersonsHandler constructs the handler.
func NewPersonsHandler(persons *service.PersonService, cookie config.AuthConfig) *PersonsHandler {
	return &PersonsHandler{persons: persons, cookie: cookie}
}

// Login handles POST /api/persons/login. On success the session token is set
// as a cookie whose Max-Age matches the token's own expiry, and the profile is
// returned without the password field.
func (h *PersonsHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	person, token, err := h.persons.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return apperrors.NewAuthRejected()
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.persons.TokenCodec().ExpirySeconds(),
		HTTPOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: h.cookie.CookieSameSite,
	})
	return c.JSON(fiber.Map{"data": dto.FromPerson(person)})
}

// Me handles GET /api/persons/me. The auth middleware guarantees a security
// context here; the profile is resolved by the token's subject id.
func (h *PersonsHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewAuthRejected()
	}

	person, err := h.persons.GetPerson(c.Context(), principal.SubjectID)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromPerson(person)})
}

// List handles GET /api/persons.
func (h *PersonsHandler) List(c *fiber.Ctx) error {
	persons, err := h.persons.ListPersons(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromPersons(persons)})
}

// Count handles GET /api/persons/count.
func (h *PersonsHandler) Count(c *fiber.Ctx) error {
	count, err := h.persons.CountPersons(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"count": count}})
}

// GetByEmail handles GET /api/persons/email/:email.
func (h *PersonsHandler) GetByEmail(c *fiber.Ctx) error {
	person, err := h.persons.GetPersonByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromPerson(person)})
}

// Get handles GET /api/persons/:id.
func (h *PersonsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	person, err := h.persons.GetPerson(c.Context(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromPerson(person)})
}

// Update handles PUT /api/persons/update/:id.
func (h *PersonsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	person, err := h.persons.GetPerson(c.Context(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	person.NationalID = req.NationalID
	person.FirstName = req.FirstName
	person.LastName = req.LastName
	person.Phone = req.Phone
	person.Email = req.Email

	if err := h.persons.UpdatePerson(c.Context(), person); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromPerson(person)})
}

// UpdatePassword handles PATCH /api/persons/update-password/:id.
func (h *PersonsHandler) UpdatePassword(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "password required")
	}
	if err := h.persons.UpdatePassword(c.Context(), id, req.Password); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Delete handles DELETE /api/persons/delete/:id.
func (h *PersonsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.persons.DeletePerson(c.Context(), id); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
