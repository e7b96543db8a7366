package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/controllers"
	"github.com/juridx/juridx-api/middleware"
)

// SetupServiceRoutes configures all service catalogue routes
func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/api/services")

	service.Get("/", controllers.GetServices)
	service.Get("/:id", controllers.GetService)
	service.Post("/", middleware.Protected(), middleware.RequireAdmin(), controllers.CreateService)
	service.Put("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.UpdateService)
	service.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.DeleteService)
}
