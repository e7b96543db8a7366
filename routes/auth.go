package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/controllers"
	"github.com/juridx/juridx-api/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.Me)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
}
