package client

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aetheris/airline-platform/internal/auth"
)

// NotificationClient posts notification records to the notifications service
// through the gateway. It authenticates with the shared service key, so the
// call succeeds without any user token.
type NotificationClient struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	logger  *zap.Logger
}

// NewNotificationClient builds a client pointed at the gateway base URL.
func NewNotificationClient(gatewayURL, apiKey string, timeout time.Duration, logger *zap.Logger) *NotificationClient {
	return &NotificationClient{baseURL: gatewayURL, apiKey: apiKey, timeout: timeout, logger: logger}
}

type notificationRequest struct {
	PersonID string `json:"person_id"`
	Email    string `json:"email"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// SendWelcome records a welcome notification for a newly registered person.
// Failures are logged and swallowed; registration must not fail because the
// notifications service is down.
func (c *NotificationClient) SendWelcome(personID int64, email, name string) {
	req := notificationRequest{
		PersonID: fmt.Sprintf("%d", personID),
		Email:    email,
		Title:    "Registration successful",
		Message:  fmt.Sprintf("Hello %s, your account has been created.", name),
	}

	url := c.baseURL + auth.NotificationsRoutePrefix + "/api/notifications/save"
	agent := fiber.Post(url)
	agent.Timeout(c.timeout)
	agent.Set(auth.ServiceKeyHeader, c.apiKey)
	agent.JSON(req)

	code, _, errs := agent.Bytes()
	if len(errs) > 0 {
		c.logger.Warn("failed to send notification", zap.Error(errs[0]))
		return
	}
	if code >= http.StatusBadRequest {
		c.logger.Warn("notification rejected", zap.Int("status", code))
	}
}
