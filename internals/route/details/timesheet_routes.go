// internals/route/details/timesheet_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	timesheetController "asetku_backend/internals/features/timesheets/controller"

	authmw "asetku_backend/internals/middlewares/auth"
)

func TimesheetRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := timesheetController.NewTimesheetController(db)

	ts := api.Group("/timesheets", authmw.RequirePage(db, "timesheets"))
	ts.Get("/", ctrl.List)
	ts.Post("/", ctrl.Create)
	ts.Post("/:id/clock-out", ctrl.ClockOut)
	ts.Patch("/:id", ctrl.Update)
	ts.Delete("/:id", ctrl.Delete)
}
