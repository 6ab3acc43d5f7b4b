package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// RequireAuthenticated ensures a verified principal reached the handler.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		return c.Next()
	}
}

// RequireAdmin restricts the route to system administrators.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || !principal.IsAdmin {
			return fiber.NewError(http.StatusForbidden, "admin clearance required")
		}
		return c.Next()
	}
}

// RequireHospitalAdmin restricts the route to system admins or admins of a
// hospital.
func RequireHospitalAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || (!principal.IsAdmin && !principal.IsHospitalAdmin) {
			return fiber.NewError(http.StatusForbidden, "hospital admin clearance required")
		}
		return c.Next()
	}
}
