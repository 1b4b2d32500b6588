package auth

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/aetheris/airline-platform/pkg/util"
)

const principalKey = "auth_principal"

// Principal is the request-scoped security context. It is created fresh per
// request, stored in the request's locals and never shared or persisted.
type Principal struct {
	Name        string
	SubjectID   int64
	Authorities []string
}

// Middleware enforces the per-service authentication decision: service key
// first, then the exclusion table, then the cookie token. Every service runs
// this chain independently of the gateway so trusted peers can call it
// directly.
type Middleware struct {
	codec      *TokenCodec
	rules      *RuleTable
	serviceKey string
	logger     *zap.Logger
}

// NewMiddleware constructs the middleware. An empty serviceKey disables the
// service-key path entirely; it never matches an empty header.
func NewMiddleware(codec *TokenCodec, rules *RuleTable, serviceKey string, logger *zap.Logger) *Middleware {
	return &Middleware{codec: codec, rules: rules, serviceKey: serviceKey, logger: logger}
}

// Handle runs the authentication state machine for one request.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	// Service key is always evaluated first and short-circuits the token
	// check on an exact match.
	if key, present := ServiceKeyFromRequest(c); present {
		if m.serviceKey != "" && key == m.serviceKey {
			setPrincipal(c, &Principal{
				Name:        ServicePrincipal,
				Authorities: []string{AuthorityService},
			})
			return c.Next()
		}
		// Wrong key alone is not fatal: the request may still carry a valid
		// token or hit an excluded path. Never log the offered value.
		m.logger.Debug("service key mismatch",
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
		)
	}

	// A context set by an earlier filter in the same chain is never replaced.
	if _, ok := PrincipalFromContext(c); ok {
		return c.Next()
	}

	if m.rules.Excluded(c.Method(), c.Path()) {
		// Anonymous request; downstream handlers must treat the absent
		// context as "anonymous", not as an error.
		return c.Next()
	}

	token, present := TokenFromCookie(c)
	if !present {
		m.logger.Debug("missing credential",
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
		)
		return apperrors.NewAuthRejected()
	}

	claims, err := m.codec.Verify(token)
	if err != nil {
		m.logger.Debug("invalid token",
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
		)
		return apperrors.NewAuthRejected()
	}

	setPrincipal(c, PrincipalFromClaims(claims))
	return c.Next()
}

// PrincipalFromClaims maps verified claims onto a security context. The
// externally visible name is the email, falling back to the subject id when
// the email claim is blank.
func PrincipalFromClaims(claims *Claims) *Principal {
	name := claims.Email
	if name == "" {
		name = strconv.FormatInt(claims.SubjectID, 10)
	}
	return &Principal{
		Name:        name,
		SubjectID:   claims.SubjectID,
		Authorities: AuthoritiesForRole(claims.Role),
	}
}

// PrincipalFromContext retrieves the authenticated principal, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// SetPrincipal installs a security context on the request. Exposed for the
// gateway, which authenticates through its own chain before forwarding.
func SetPrincipal(c *fiber.Ctx, p *Principal) {
	setPrincipal(c, p)
}

func setPrincipal(c *fiber.Ctx, p *Principal) {
	c.Locals(principalKey, p)
}
