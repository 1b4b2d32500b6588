package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/aetheris/airline-platform/internal/api/dto"
	"github.com/aetheris/airline-platform/internal/service"
	apperrors "github.com/aetheris/airline-platform/pkg/util"
)

// PaymentsHandler exposes payment endpoints.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs the handler.
func NewPaymentsHandler(payments *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: payments}
}

// Record handles POST /api/payments/save.
func (h *PaymentsHandler) Record(c *fiber.Ctx) error {
	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ReservationID == 0 || req.Amount <= 0 {
		return fiber.NewError(http.StatusBadRequest, "reservation_id and positive amount required")
	}
	payment := req.ToPayment()
	if err := h.payments.Record(c.Context(), payment); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": payment})
}

// Refund handles PATCH /api/payments/refund/:id.
func (h *PaymentsHandler) Refund(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid id")
	}
	if err := h.payments.Refund(c.Context(), id); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Get handles GET /api/payments/:id.
func (h *PaymentsHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid id")
	}
	payment, err := h.payments.Get(c.Context(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": payment})
}

// ListByReservation handles GET /api/payments/reservation/:id.
func (h *PaymentsHandler) ListByReservation(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid id")
	}
	payments, err := h.payments.ListByReservation(c.Context(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": payments})
}
