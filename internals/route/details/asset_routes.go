// internals/route/details/asset_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentController "asetku_backend/internals/features/assets/assignments/controller"
	assetController "asetku_backend/internals/features/assets/assets/controller"
	categoryController "asetku_backend/internals/features/assets/categories/controller"
	typeController "asetku_backend/internals/features/assets/types/controller"

	"asetku_backend/internals/constants"
	authmw "asetku_backend/internals/middlewares/auth"
)

// AssetRoutes mounts the asset master data and the assignment ledger.
func AssetRoutes(api fiber.Router, db *gorm.DB) {
	write := authmw.RequireRoles(constants.StaffAndAbove...)

	catCtrl := categoryController.NewAssetCategoryController(db)
	cat := api.Group("/asset-categories", authmw.RequirePage(db, "asset-categories"))
	cat.Get("/", catCtrl.List)
	cat.Get("/:id", catCtrl.Detail)
	cat.Post("/", write, catCtrl.Create)
	cat.Patch("/:id", write, catCtrl.Update)
	cat.Delete("/:id", write, catCtrl.Delete)

	typeCtrl := typeController.NewAssetTypeController(db)
	typ := api.Group("/asset-types", authmw.RequirePage(db, "asset-types"))
	typ.Get("/", typeCtrl.List)
	typ.Get("/:id", typeCtrl.Detail)
	typ.Post("/", write, typeCtrl.Create)
	typ.Patch("/:id", write, typeCtrl.Update)
	typ.Delete("/:id", write, typeCtrl.Delete)

	assetCtrl := assetController.NewAssetController(db)
	asset := api.Group("/assets", authmw.RequirePage(db, "assets"))
	asset.Get("/", assetCtrl.List)
	asset.Get("/:id", assetCtrl.Detail)
	asset.Post("/", write, assetCtrl.Create)
	asset.Patch("/:id", write, assetCtrl.Update)
	asset.Patch("/:id/availability", write, assetCtrl.UpdateAvailability)
	asset.Delete("/:id", write, assetCtrl.Delete)

	asgCtrl := assignmentController.NewAssetAssignmentController(db)
	asg := api.Group("/asset-assignments", authmw.RequirePage(db, "asset-assignments"))
	asg.Get("/", asgCtrl.List)
	asg.Get("/:id", asgCtrl.Detail)
	asg.Post("/", write, asgCtrl.Create)
	asg.Post("/:id/return", write, asgCtrl.Return)
	asg.Delete("/:id", write, asgCtrl.Delete)
}
