package middleware

import (
	"github.com/gofiber/fiber/v2"

	"prime-property/internal/domain"
)

// RequireRole must run after AuthRequired.
func RequireRole(requiredRole domain.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return domain.ErrMissingToken
		}

		if !user.HasRole(requiredRole) {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}
