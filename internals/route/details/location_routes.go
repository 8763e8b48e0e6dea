// internals/route/details/location_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	locationController "asetku_backend/internals/features/locations/controller"

	"asetku_backend/internals/constants"
	authmw "asetku_backend/internals/middlewares/auth"
)

func LocationRoutes(api fiber.Router, db *gorm.DB) {
	write := authmw.RequireRoles(constants.StaffAndAbove...)
	ctrl := locationController.NewLocationController(db)

	b := api.Group("/buildings", authmw.RequirePage(db, "locations"))
	b.Get("/", ctrl.ListBuildings)
	b.Post("/", write, ctrl.CreateBuilding)
	b.Patch("/:id", write, ctrl.UpdateBuilding)
	b.Delete("/:id", write, ctrl.DeleteBuilding)

	f := api.Group("/floors", authmw.RequirePage(db, "locations"))
	f.Get("/", ctrl.ListFloors)
	f.Post("/", write, ctrl.CreateFloor)
	f.Patch("/:id", write, ctrl.UpdateFloor)
	f.Delete("/:id", write, ctrl.DeleteFloor)

	r := api.Group("/rooms", authmw.RequirePage(db, "locations"))
	r.Get("/", ctrl.ListRooms)
	r.Post("/", write, ctrl.CreateRoom)
	r.Patch("/:id", write, ctrl.UpdateRoom)
	r.Delete("/:id", write, ctrl.DeleteRoom)
}
