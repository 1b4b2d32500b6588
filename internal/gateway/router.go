package gateway

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	"go.uber.org/zap"

	"github.com/aetheris/airline-platform/internal/auth"
	"github.com/aetheris/airline-platform/internal/config"
	"github.com/aetheris/airline-platform/internal/observability"
	apperrors "github.com/aetheris/airline-platform/pkg/util"
)

// Router selects between two chains in declared order: a narrowly-matched
// protected chain covering the reserved current-principal path, then a
// catch-all chain that forwards everything else and defers authentication to
// the downstream service.
type Router struct {
	verifier  *auth.Verifier
	logger    *zap.Logger
	metrics   *observability.Metrics
	upstreams map[string]string
	protected map[string]struct{}
}

// New builds the edge router from the configured upstream map.
func New(verifier *auth.Verifier, cfg config.GatewayConfig, logger *zap.Logger, metrics *observability.Metrics) *Router {
	return &Router{
		verifier: verifier,
		logger:   logger,
		metrics:  metrics,
		upstreams: map[string]string{
			auth.PersonsRoutePrefix:       cfg.PersonsURL,
			auth.FlightsRoutePrefix:       cfg.FlightsURL,
			auth.AircraftRoutePrefix:      cfg.AircraftURL,
			auth.ReservationsRoutePrefix:  cfg.ReservationsURL,
			auth.PaymentsRoutePrefix:      cfg.PaymentsURL,
			auth.NotificationsRoutePrefix: cfg.NotificationsURL,
		},
		protected: map[string]struct{}{
			auth.PersonsRoutePrefix + auth.CurrentPrincipalPath: {},
			auth.CurrentPrincipalPath:                           {},
		},
	}
}

// Register wires the CORS policy and both chains. CSRF protection is not
// installed anywhere: this is a pure API surface, not a form-posting site.
func (r *Router) Register(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(string) bool { return true },
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Content-Type, Authorization, X-API-Key",
		AllowCredentials: true,
	}))
	app.Use(r.protectedChain)
	app.Use(r.passThrough)
}

// protectedChain authenticates the reserved current-principal path at the
// edge. Everything else falls through untouched.
func (r *Router) protectedChain(c *fiber.Ctx) error {
	path := c.Path()
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	if _, ok := r.protected[path]; !ok {
		return c.Next()
	}

	cred, ok := CookieBearer(c)
	if !ok {
		r.metrics.RecordAuthOutcome("rejected")
		r.logger.Debug("missing credential at edge", zap.String("path", c.Path()))
		return apperrors.NewAuthRejected()
	}

	// The signature check is CPU-bound; run it on the verifier pool and park
	// this request until the outcome arrives.
	outcome := <-r.verifier.VerifyAsync(string(cred))
	if outcome.Err != nil {
		if errors.Is(outcome.Err, auth.ErrInvalidToken) {
			r.metrics.RecordAuthOutcome("rejected")
			r.logger.Debug("invalid token at edge", zap.String("path", c.Path()))
			return apperrors.NewAuthRejected()
		}
		return apperrors.NewInternalError(outcome.Err)
	}

	r.metrics.RecordAuthOutcome("authenticated")
	auth.SetPrincipal(c, auth.PrincipalFromClaims(outcome.Claims))
	return c.Next()
}

// passThrough proxies to the upstream selected by the first path segment,
// forwarding the request with its original cookies intact.
func (r *Router) passThrough(c *fiber.Ctx) error {
	base, ok := r.upstream(c.Path())
	if !ok {
		return apperrors.NewNotFound("route", map[string]any{"path": c.Path()})
	}
	return proxy.Do(c, base+c.OriginalURL())
}

func (r *Router) upstream(path string) (string, bool) {
	for prefix, base := range r.upstreams {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return base, true
		}
	}
	// Unprefixed persons paths stay routable so the reserved path behaves the
	// same with or without its routing prefix.
	if strings.HasPrefix(path, "/api/persons") {
		return r.upstreams[auth.PersonsRoutePrefix], true
	}
	return "", false
}
