package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/controllers"
	"github.com/juridx/juridx-api/middleware"
)

// SetupUserRoutes configures all user management routes
func SetupUserRoutes(app *fiber.App) {
	user := app.Group("/api/users")

	user.Get("/", middleware.Protected(), middleware.RequireAdmin(), controllers.GetUsers)
	// Self-service profile edits are allowed; the controller checks ownership.
	user.Put("/:id", middleware.Protected(), controllers.UpdateUser)
	user.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.DeleteUser)
}
