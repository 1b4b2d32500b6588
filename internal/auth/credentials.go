package auth

import (
	"github.com/gofiber/fiber/v2"
)

const (
	// CookieName carries the session token.
	CookieName = "JWT_TOKEN"
	// ServiceKeyHeader carries the shared service secret on internal calls.
	ServiceKeyHeader = "X-API-Key"
	// ServicePrincipal is the fixed identity granted to service-key callers.
	ServicePrincipal = "service-client"
)

// ServiceKeyFromRequest reads the raw service key header. No parsing.
func ServiceKeyFromRequest(c *fiber.Ctx) (string, bool) {
	key := c.Get(ServiceKeyHeader)
	if key == "" {
		return "", false
	}
	return key, true
}

// TokenFromCookie scans the request's cookies for the session token. When
// multiple cookies share the name the first one found wins; that ambiguity is
// part of the protocol and must not be reinterpreted.
func TokenFromCookie(c *fiber.Ctx) (string, bool) {
	var token string
	found := false
	c.Request().Header.VisitAllCookie(func(key, value []byte) {
		if found || string(key) != CookieName {
			return
		}
		token = string(value)
		found = true
	})
	return token, found
}
