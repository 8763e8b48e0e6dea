// internals/route/details/permission_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	permissionController "asetku_backend/internals/features/permissions/controller"

	"asetku_backend/internals/constants"
	authmw "asetku_backend/internals/middlewares/auth"
)

// PermissionRoutes mounts the page-permission admin surface. Only
// admins can read or edit grants; the guard itself runs everywhere.
func PermissionRoutes(api fiber.Router, db *gorm.DB) {
	admin := authmw.RequireRoles(constants.AdminOnly...)
	ctrl := permissionController.NewPagePermissionController(db)

	perm := api.Group("/page-permissions", admin)
	perm.Get("/", ctrl.List)
	perm.Put("/", ctrl.Upsert)
	perm.Delete("/:id", ctrl.Delete)
}
