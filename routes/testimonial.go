package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/controllers"
	"github.com/juridx/juridx-api/middleware"
)

// SetupTestimonialRoutes configures all testimonial related routes
func SetupTestimonialRoutes(app *fiber.App) {
	testimonial := app.Group("/api/testimonials")

	testimonial.Get("/", middleware.OptionalAuth(), controllers.GetTestimonials)
	testimonial.Post("/", controllers.CreateTestimonial)
	testimonial.Patch("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.UpdateTestimonial)
	testimonial.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.DeleteTestimonial)
}
