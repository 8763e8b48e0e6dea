// internals/route/details/organization_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	departmentController "asetku_backend/internals/features/organizations/controller"

	"asetku_backend/internals/constants"
	authmw "asetku_backend/internals/middlewares/auth"
)

func OrganizationRoutes(api fiber.Router, db *gorm.DB) {
	write := authmw.RequireRoles(constants.StaffAndAbove...)
	ctrl := departmentController.NewDepartmentController(db)

	dep := api.Group("/departments", authmw.RequirePage(db, "departments"))
	dep.Get("/", ctrl.List)
	dep.Get("/:id", ctrl.Detail)
	dep.Post("/", write, ctrl.Create)
	dep.Patch("/:id", write, ctrl.Update)
	dep.Delete("/:id", write, ctrl.Delete)
}
