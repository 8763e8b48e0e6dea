package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRoles gates a route group on the role carried in the token.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role := Role(c)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Your role is not allowed to access this resource")
		}
		return c.Next()
	}
}
