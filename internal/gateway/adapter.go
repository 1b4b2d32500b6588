package gateway

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aetheris/airline-platform/internal/auth"
)

// BearerToken presents a cookie-carried session token as a generic bearer
// credential, which is the shape the verification path expects regardless of
// transport.
type BearerToken string

// CookieBearer adapts the cookie extraction strategy to a bearer credential.
// It is an adapter over auth.TokenFromCookie, not a second extraction
// mechanism.
func CookieBearer(c *fiber.Ctx) (BearerToken, bool) {
	token, ok := auth.TokenFromCookie(c)
	if !ok {
		return "", false
	}
	return BearerToken(token), true
}
