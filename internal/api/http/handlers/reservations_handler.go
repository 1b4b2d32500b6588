package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/aetheris/airline-platform/internal/api/dto"
	"github.com/aetheris/airline-platform/internal/service"
	apperrors "github.com/aetheris/airline-platform/pkg/util"
)

// ReservationsHandler exposes booking CRUD endpoints.
type ReservationsHandler struct {
	reservations *service.ReservationService
}

// NewReservationsHandler constructs the handler.
func NewReservationsHandler(reservations *service.ReservationService) *ReservationsHandler {
	return &ReservationsHandler{reservations: reservations}
}

// Create handles POST /api/reservations/save.
func (h *ReservationsHandler) Create(c *fiber.Ctx) error {
	var req dto.ReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.CustomerName == "" || req.FlightID == "" || req.SeatNumber == "" {
		return fiber.NewError(http.StatusBadRequest, "customer_name, flight_id, seat_number required")
	}
	reservation := req.ToReservation()
	if err := h.reservations.Create(c.Context(), reservation); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": reservation})
}

// Cancel handles PATCH /api/reservations/cancel/:id.
func (h *ReservationsHandler) Cancel(c *fiber.Ctx) error {
	id, err := parseReservationID(c)
	if err != nil {
		return err
	}
	if err := h.reservations.Cancel(c.Context(), id); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Delete handles DELETE /api/reservations/delete/:id.
func (h *ReservationsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseReservationID(c)
	if err != nil {
		return err
	}
	if err := h.reservations.Delete(c.Context(), id); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Get handles GET /api/reservations/:id.
func (h *ReservationsHandler) Get(c *fiber.Ctx) error {
	id, err := parseReservationID(c)
	if err != nil {
		return err
	}
	reservation, err := h.reservations.Get(c.Context(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": reservation})
}

// List handles GET /api/reservations.
func (h *ReservationsHandler) List(c *fiber.Ctx) error {
	reservations, err := h.reservations.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": reservations})
}

func parseReservationID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
