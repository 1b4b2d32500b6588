package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/aetheris/airline-platform/internal/api/dto"
	"github.com/aetheris/airline-platform/internal/service"
	apperrors "github.com/aetheris/airline-platform/pkg/util"
)

// NotificationsHandler exposes notification record endpoints.
type NotificationsHandler struct {
	notifications *service.NotificationService
}

// NewNotificationsHandler constructs the handler.
func NewNotificationsHandler(notifications *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications}
}

// Save handles POST /api/notifications/save, the internal intake endpoint
// used by peer services.
func (h *NotificationsHandler) Save(c *fiber.Ctx) error {
	var req dto.NotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" || req.Message == "" {
		return fiber.NewError(http.StatusBadRequest, "title and message required")
	}
	notification := req.ToNotification()
	if err := h.notifications.Save(c.Context(), notification); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": notification})
}

// MarkRead handles PATCH /api/notifications/read/:id.
func (h *NotificationsHandler) MarkRead(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid id")
	}
	if err := h.notifications.MarkRead(c.Context(), id); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Get handles GET /api/notifications/:id.
func (h *NotificationsHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid id")
	}
	notification, err := h.notifications.Get(c.Context(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": notification})
}

// List handles GET /api/notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	notifications, err := h.notifications.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": notifications})
}
