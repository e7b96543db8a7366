package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/controllers"
	"github.com/juridx/juridx-api/middleware"
)

// SetupAdminRoutes configures the back-office dashboard and settings routes
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.Protected(), middleware.RequireAdmin())

	admin.Get("/dashboard", controllers.GetDashboard)
	admin.Get("/settings", controllers.GetSettings)
	admin.Put("/settings/:key", controllers.UpsertSetting)
}
