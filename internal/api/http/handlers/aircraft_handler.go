package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/aetheris/airline-platform/internal/api/dto"
	"github.com/aetheris/airline-platform/internal/service"
	apperrors "github.com/aetheris/airline-platform/pkg/util"
)

// AircraftHandler exposes fleet CRUD endpoints.
type AircraftHandler struct {
	fleet *service.AircraftService
}

// NewAircraftHandler constructs the handler.
func NewAircraftHandler(fleet *service.AircraftService) *AircraftHandler {
	return &AircraftHandler{fleet: fleet}
}

// Create handles POST /api/aircraft/save.
func (h *AircraftHandler) Create(c *fiber.Ctx) error {
	var req dto.AircraftRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	aircraft := req.ToAircraft()
	if err := h.fleet.Create(c.Context(), aircraft); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": aircraft})
}

// Update handles PUT /api/aircraft/update/:id.
func (h *AircraftHandler) Update(c *fiber.Ctx) error {
	var req dto.AircraftRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	aircraft := req.ToAircraft()
	aircraft.ID = c.Params("id")
	if err := h.fleet.Update(c.Context(), aircraft); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": aircraft})
}

// Delete handles DELETE /api/aircraft/delete/:id.
func (h *AircraftHandler) Delete(c *fiber.Ctx) error {
	if err := h.fleet.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Get handles GET /api/aircraft/:id.
func (h *AircraftHandler) Get(c *fiber.Ctx) error {
	aircraft, err := h.fleet.Get(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": aircraft})
}

// List handles GET /api/aircraft.
func (h *AircraftHandler) List(c *fiber.Ctx) error {
	fleet, err := h.fleet.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fleet})
}
