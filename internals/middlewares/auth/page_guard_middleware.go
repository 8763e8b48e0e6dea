// internals/middlewares/auth/page_guard_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	permService "asetku_backend/internals/features/permissions/service"
)

// RequirePage gates a route group behind the page-permission table.
// Must run after AuthJWT so the role is already in locals.
func RequirePage(db *gorm.DB, pageKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := Role(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		ok, err := permService.IsAllowed(c.Context(), db, pageKey, role)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Permission check failed")
		}
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "You do not have access to this page")
		}
		return c.Next()
	}
}
