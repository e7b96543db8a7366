package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/controllers"
	"github.com/juridx/juridx-api/middleware"
)

// SetupNewsletterRoutes configures all newsletter related routes
func SetupNewsletterRoutes(app *fiber.App) {
	newsletter := app.Group("/api/newsletter")

	newsletter.Post("/", controllers.Subscribe)
	newsletter.Delete("/", controllers.Unsubscribe)
	newsletter.Get("/", middleware.Protected(), middleware.RequireAdmin(), controllers.GetSubscribers)
	newsletter.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.DeleteSubscriber)
}
