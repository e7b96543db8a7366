package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/juridx/juridx-api/cron"
	"github.com/juridx/juridx-api/db"
	"github.com/juridx/juridx-api/redis"
	"github.com/juridx/juridx-api/routes"
)

func main() {
	db.Init()
	db.Migrate()
	db.Seed()
	redis.Init()
	cron.StartCronJobs()

	app := fiber.New()

	app.Use(logger.New())

	// Credentials require explicit origins; without CORS_ORIGINS the
	// permissive default applies.
	corsConfig := cors.Config{}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}
	app.Use(cors.New(corsConfig))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.SetupAuthRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupTestimonialRoutes(app)
	routes.SetupContactRoutes(app)
	routes.SetupConsultationRoutes(app)
	routes.SetupNewsletterRoutes(app)
	routes.SetupBlogRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupAdminRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
