package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/aetheris/airline-platform/internal/domain"
)

// Authority tags granted to authenticated principals.
const (
	AuthorityService  = "ROLE_SERVICE"
	AuthorityAdmin    = "ROLE_ADMIN"
	AuthorityEmployee = "ROLE_EMPLOYEE"
	AuthorityCustomer = "ROLE_CUSTOMER"
)

// AuthoritiesForRole derives authority tags from a token role.
func AuthoritiesForRole(role domain.Role) []string {
	switch role {
	case domain.RoleAdmin:
		return []string{AuthorityAdmin}
	case domain.RoleEmployee:
		return []string{AuthorityEmployee}
	case domain.RoleCustomer:
		return []string{AuthorityCustomer}
	}
	return nil
}

// HasAuthority reports whether the principal carries the given tag.
func (p *Principal) HasAuthority(authority string) bool {
	if p == nil {
		return false
	}
	for _, a := range p.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

// RequireAuthority guards a route behind a specific authority tag.
func RequireAuthority(authority string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || !principal.HasAuthority(authority) {
			return fiber.NewError(http.StatusForbidden, "insufficient authority")
		}
		return c.Next()
	}
}
