package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"asetku_backend/internals/configs"
	database "asetku_backend/internals/databases"
	"asetku_backend/internals/middlewares"
	"asetku_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	database.WarmUp()

	app := fiber.New(fiber.Config{
		AppName:      "asetku_backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal server error"
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
				msg = fe.Message
			}
			return c.Status(code).JSON(fiber.Map{
				"code":    code,
				"status":  "error",
				"message": msg,
			})
		},
	})

	app.Use(requestid.New())
	middlewares.SetupMiddlewares(app)
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(etag.New())

	route.SetupRoutes(app, database.DB)

	// graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("shutdown err: %v", err)
		}
	}()

	port := configs.GetEnv("PORT", "3000")
	log.Printf("🚀 Listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
