package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"asetku_backend/internals/middlewares/logger"
)

func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
