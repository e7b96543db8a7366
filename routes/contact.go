package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/controllers"
	"github.com/juridx/juridx-api/middleware"
)

// SetupContactRoutes configures all contact related routes
func SetupContactRoutes(app *fiber.App) {
	contact := app.Group("/api/contact")

	contact.Post("/", controllers.CreateContact)
	contact.Get("/", middleware.Protected(), middleware.RequireAdmin(), controllers.GetContacts)
	contact.Get("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.GetContact)
	contact.Put("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.UpdateContact)
	contact.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.DeleteContact)
}
