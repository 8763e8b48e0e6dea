// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asetku_backend/internals/configs"
	userController "asetku_backend/internals/features/users/controller"
	"asetku_backend/internals/middlewares"
	authmw "asetku_backend/internals/middlewares/auth"
	"asetku_backend/internals/route/details"
)

// SetupRoutes wires the public surface (/api) and the authenticated
// admin surface (/api/a).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	public := app.Group("/api")
	authCtrl := userController.NewAuthController(db)
	public.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)

	api := app.Group("/api/a", authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))

	details.AssetRoutes(api, db)
	details.LocationRoutes(api, db)
	details.OrganizationRoutes(api, db)
	details.UserRoutes(api, db)
	details.TimesheetRoutes(api, db)
	details.PermissionRoutes(api, db)
}
