package gateway_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/aetheris/airline-platform/internal/api/http"
	"github.com/aetheris/airline-platform/internal/auth"
	"github.com/aetheris/airline-platform/internal/config"
	"github.com/aetheris/airline-platform/internal/domain"
	"github.com/aetheris/airline-platform/internal/gateway"
	"github.com/aetheris/airline-platform/internal/observability"
)

type upstream struct {
	server *httptest.Server
	hits   atomic.Int64
	path   atomic.Value
}

func newUpstream(t *testing.T, body string) *upstream {
	t.Helper()
	u := &upstream{}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.hits.Add(1)
		u.path.Store(r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(u.server.Close)
	return u
}

func (u *upstream) lastPath() string {
	if p, ok := u.path.Load().(string); ok {
		return p
	}
	return ""
}

func newEdgeApp(codec *auth.TokenCodec, cfg config.GatewayConfig) *fiber.App {
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	router := gateway.New(auth.NewVerifier(codec, 4), cfg, zap.NewNop(), observability.NewMetrics())
	router.Register(app)
	return app
}

func TestEdgeRejectsProtectedPathWithoutCookie(t *testing.T) {
	t.Parallel()

	persons := newUpstream(t, "profile")
	codec := auth.NewTokenCodec("edge-secret", 3600)
	app := newEdgeApp(codec, config.GatewayConfig{PersonsURL: persons.server.URL})

	for _, path := range []string{
		"/persons-service/api/persons/me",
		"/api/persons/me",
		"/persons-service/api/persons/me/",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), "UNAUTHORIZED", path)
	}

	// The upstream must never see a rejected request.
	assert.Equal(t, int64(0), persons.hits.Load())
}

func TestEdgeForwardsProtectedPathWithValidCookie(t *testing.T) {
	t.Parallel()

	persons := newUpstream(t, "profile")
	codec := auth.NewTokenCodec("edge-secret", 3600)
	app := newEdgeApp(codec, config.GatewayConfig{PersonsURL: persons.server.URL})

	token, err := codec.Issue(3, domain.RoleCustomer, "c@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/persons-service/api/persons/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "profile", string(raw))
	assert.Equal(t, int64(1), persons.hits.Load())
	// The original URL, prefix included, reaches the upstream untouched.
	assert.Equal(t, "/persons-service/api/persons/me", persons.lastPath())
}

func TestEdgeRejectsInvalidCookieAtProtectedPath(t *testing.T) {
	t.Parallel()

	persons := newUpstream(t, "profile")
	codec := auth.NewTokenCodec("edge-secret", 3600)
	app := newEdgeApp(codec, config.GatewayConfig{PersonsURL: persons.server.URL})

	req := httptest.NewRequest(http.MethodGet, "/api/persons/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "garbage"})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int64(0), persons.hits.Load())
}

func TestEdgePassThroughDoesNotAuthenticate(t *testing.T) {
	t.Parallel()

	flights := newUpstream(t, "[]")
	codec := auth.NewTokenCodec("edge-secret", 3600)
	app := newEdgeApp(codec, config.GatewayConfig{FlightsURL: flights.server.URL})

	// No credentials at all; the catch-all chain proxies and lets the
	// downstream service decide.
	req := httptest.NewRequest(http.MethodGet, "/flights-service/api/flights", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), flights.hits.Load())
	assert.Equal(t, "/flights-service/api/flights", flights.lastPath())
}

func TestEdgeBarePersonsPathsRouteToPersons(t *testing.T) {
	t.Parallel()

	persons := newUpstream(t, "ok")
	codec := auth.NewTokenCodec("edge-secret", 3600)
	app := newEdgeApp(codec, config.GatewayConfig{PersonsURL: persons.server.URL})

	req := httptest.NewRequest(http.MethodPost, "/api/persons/login", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/api/persons/login", persons.lastPath())
}

func TestEdgeUnknownRouteIsNotFound(t *testing.T) {
	t.Parallel()

	codec := auth.NewTokenCodec("edge-secret", 3600)
	app := newEdgeApp(codec, config.GatewayConfig{})

	req := httptest.NewRequest(http.MethodGet, "/unknown-service/api/things", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "NOT_FOUND")
}
