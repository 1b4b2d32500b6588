package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/aetheris/airline-platform/internal/api/dto"
	"github.com/aetheris/airline-platform/internal/service"
	apperrors "github.com/aetheris/airline-platform/pkg/util"
)

// FlightsHandler exposes flight CRUD endpoints.
type FlightsHandler struct {
	flights *service.FlightService
}

// NewFlightsHandler constructs the handler.
func NewFlightsHandler(flights *service.FlightService) *FlightsHandler {
	return &FlightsHandler{flights: flights}
}

// Create handles POST /api/flights/save.
func (h *FlightsHandler) Create(c *fiber.Ctx) error {
	var req dto.FlightRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	flight, err := req.ToFlight()
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid departure_date")
	}
	if err := h.flights.Create(c.Context(), flight); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromFlight(flight)})
}

// Update handles PUT /api/flights/update/:id.
func (h *FlightsHandler) Update(c *fiber.Ctx) error {
	var req dto.FlightRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	flight, err := req.ToFlight()
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid departure_date")
	}
	flight.ID = c.Params("id")
	if err := h.flights.Update(c.Context(), flight); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromFlight(flight)})
}

// Delete handles DELETE /api/flights/delete/:id.
func (h *FlightsHandler) Delete(c *fiber.Ctx) error {
	if err := h.flights.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Get handles GET /api/flights/:id.
func (h *FlightsHandler) Get(c *fiber.Ctx) error {
	flight, err := h.flights.Get(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromFlight(flight)})
}

// List handles GET /api/flights.
func (h *FlightsHandler) List(c *fiber.Ctx) error {
	flights, err := h.flights.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	out := make([]dto.FlightResponse, 0, len(flights))
	for i := range flights {
		out = append(out, dto.FromFlight(&flights[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}
