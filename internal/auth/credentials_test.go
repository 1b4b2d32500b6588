package auth_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aetheris/airline-platform/internal/auth"
)

// cookieProbe exposes the extraction result as the response body so tests can
// observe it through a real request.
func cookieProbe() *fiber.App {
	app := fiber.New()
	app.Get("/probe", func(c *fiber.Ctx) error {
		token, ok := auth.TokenFromCookie(c)
		if !ok {
			return c.SendString("<absent>")
		}
		return c.SendString(token)
	})
	return app
}

func TestTokenFromCookie(t *testing.T) {
	t.Parallel()

	app := cookieProbe()

	t.Run("single cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "tok-1"})

		resp, err := app.Test(req)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "tok-1", string(body))
	})

	t.Run("first cookie wins on duplicates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "first"})
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "second"})

		resp, err := app.Test(req)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "first", string(body))
	})

	t.Run("absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.AddCookie(&http.Cookie{Name: "SESSION", Value: "unrelated"})

		resp, err := app.Test(req)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "<absent>", string(body))
	})
}

func TestServiceKeyFromRequest(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/probe", func(c *fiber.Ctx) error {
		key, ok := auth.ServiceKeyFromRequest(c)
		if !ok {
			return c.SendString("<absent>")
		}
		return c.SendString(key)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(auth.ServiceKeyHeader, "shared-secret")
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "shared-secret", string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, "<absent>", string(body))
}
