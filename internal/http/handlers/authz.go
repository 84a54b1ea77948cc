package handlers

import (
	"strings"

	"photonx/internal/domain"
	applog "photonx/internal/log"
	"photonx/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth is the auth gate: it reads the bearer credential from the
// Authorization header and attaches the resolved user to the request.
// A missing header is 401; an invalid or expired token is 403.
func RequireAuth(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return fail(c, domain.ErrUnauthorized)
		}
		u, err := auth.ResolveToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			applog.Security(c, "auth.token.reject", nil)
			return fail(c, err)
		}
		c.Locals("user", u)
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}
