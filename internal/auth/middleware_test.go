package auth_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/aetheris/airline-platform/internal/api/http"
	"github.com/aetheris/airline-platform/internal/auth"
	"github.com/aetheris/airline-platform/internal/domain"
	"github.com/aetheris/airline-platform/internal/observability"
)

const testServiceKey = "internal-key"

// newAuthApp builds an app running the full middleware chain with a terminal
// handler that reports the resolved security context.
func newAuthApp(codec *auth.TokenCodec, serviceKey string) *fiber.App {
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)

	mw := auth.NewMiddleware(codec, auth.PersonsRules(), serviceKey, zap.NewNop())
	app.Use(mw.Handle)

	app.All("/*", func(c *fiber.Ctx) error {
		principal, ok := auth.PrincipalFromContext(c)
		if !ok {
			return c.JSON(fiber.Map{"anonymous": true})
		}
		return c.JSON(fiber.Map{
			"name":        principal.Name,
			"subject_id":  principal.SubjectID,
			"authorities": principal.Authorities,
		})
	})
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestMiddlewareValidCookie(t *testing.T) {
	t.Parallel()

	codec := auth.NewTokenCodec("unit-secret", 3600)
	app := newAuthApp(codec, testServiceKey)

	token, err := codec.Issue(5, domain.RoleCustomer, "c@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/persons/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "c@example.com", body["name"])
	assert.Equal(t, float64(5), body["subject_id"])
	assert.Contains(t, body["authorities"], auth.AuthorityCustomer)
}

func TestMiddlewareRejectsUniformly(t *testing.T) {
	t.Parallel()

	codec := auth.NewTokenCodec("unit-secret", 3600)
	app := newAuthApp(codec, testServiceKey)

	missing := httptest.NewRequest(http.MethodGet, "/api/persons/me", nil)
	invalid := httptest.NewRequest(http.MethodGet, "/api/persons/me", nil)
	invalid.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "not-a-token"})

	var bodies []string
	for _, req := range []*http.Request{missing, invalid} {
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		bodies = append(bodies, string(raw))
	}

	// The rejection body never distinguishes the failure mode.
	assert.Equal(t, bodies[0], bodies[1])
	assert.Contains(t, bodies[0], "UNAUTHORIZED")
	assert.Contains(t, bodies[0], "invalid or missing credentials")
}

func TestMiddlewareExcludedPathIsAnonymous(t *testing.T) {
	t.Parallel()

	codec := auth.NewTokenCodec("unit-secret", 3600)
	app := newAuthApp(codec, testServiceKey)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/persons"},
		{http.MethodPost, "/api/users/save"},
		{http.MethodPost, "/persons-service/api/persons/login"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, "%s %s", tc.method, tc.path)
		body := decodeBody(t, resp)
		assert.Equal(t, true, body["anonymous"], "%s %s", tc.method, tc.path)
	}
}

func TestMiddlewareServiceKeyShortCircuits(t *testing.T) {
	t.Parallel()

	codec := auth.NewTokenCodec("unit-secret", 3600)
	app := newAuthApp(codec, testServiceKey)

	// The garbage cookie must never be consulted once the key matches.
	req := httptest.NewRequest(http.MethodDelete, "/api/persons/delete/5", nil)
	req.Header.Set(auth.ServiceKeyHeader, testServiceKey)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "garbage"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, auth.ServicePrincipal, body["name"])
	assert.Contains(t, body["authorities"], auth.AuthorityService)
}

func TestMiddlewareWrongServiceKeyFallsThrough(t *testing.T) {
	t.Parallel()

	codec := auth.NewTokenCodec("unit-secret", 3600)
	app := newAuthApp(codec, testServiceKey)

	// Wrong key plus a valid cookie still authenticates via the token.
	token, err := codec.Issue(5, domain.RoleAdmin, "a@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/persons/me", nil)
	req.Header.Set(auth.ServiceKeyHeader, "wrong")
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "a@example.com", body["name"])

	// Wrong key alone on a protected path is rejected.
	req = httptest.NewRequest(http.MethodGet, "/api/persons/me", nil)
	req.Header.Set(auth.ServiceKeyHeader, "wrong")

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareEmptyConfiguredKeyNeverMatches(t *testing.T) {
	t.Parallel()

	codec := auth.NewTokenCodec("unit-secret", 3600)
	app := newAuthApp(codec, "")

	req := httptest.NewRequest(http.MethodGet, "/api/persons/me", nil)
	req.Header.Set(auth.ServiceKeyHeader, "anything")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPrincipalFromClaimsNameFallback(t *testing.T) {
	t.Parallel()

	p := auth.PrincipalFromClaims(&auth.Claims{SubjectID: 17, Role: domain.RoleEmployee})
	assert.Equal(t, "17", p.Name)
	assert.Equal(t, []string{auth.AuthorityEmployee}, p.Authorities)

	p = auth.PrincipalFromClaims(&auth.Claims{SubjectID: 17, Role: domain.RoleEmployee, Email: "e@example.com"})
	assert.Equal(t, "e@example.com", p.Name)
}
