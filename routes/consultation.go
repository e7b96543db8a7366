package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/controllers"
	"github.com/juridx/juridx-api/middleware"
)

// SetupConsultationRoutes configures all consultation related routes
func SetupConsultationRoutes(app *fiber.App) {
	consultation := app.Group("/api/consultations")

	consultation.Post("/", middleware.OptionalAuth(), controllers.CreateConsultation)
	consultation.Get("/", middleware.Protected(), controllers.GetConsultations)
	consultation.Post("/batch-status", middleware.Protected(), middleware.RequireAdmin(), controllers.BatchUpdateStatus)
	consultation.Get("/:id", middleware.Protected(), controllers.GetConsultation)
	consultation.Put("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.UpdateConsultation)
	consultation.Patch("/:id/schedule", middleware.Protected(), middleware.RequireAdmin(), controllers.ScheduleConsultation)
	consultation.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.DeleteConsultation)
}
