// internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "asetku_backend/internals/features/users/controller"

	"asetku_backend/internals/constants"
	authmw "asetku_backend/internals/middlewares/auth"
)

// UserRoutes mounts account management. Mutations are admin-only.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	admin := authmw.RequireRoles(constants.AdminOnly...)
	ctrl := userController.NewUserController(db)

	u := api.Group("/users", authmw.RequirePage(db, "users"))
	u.Get("/", ctrl.List)
	u.Get("/:id", ctrl.Detail)
	u.Post("/", admin, ctrl.Create)
	u.Patch("/:id", admin, ctrl.Update)
	u.Delete("/:id", admin, ctrl.Delete)
}
