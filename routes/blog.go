package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/controllers"
	"github.com/juridx/juridx-api/middleware"
)

// SetupBlogRoutes configures all blog related routes
func SetupBlogRoutes(app *fiber.App) {
	blog := app.Group("/api/blog")

	blog.Get("/", middleware.OptionalAuth(), controllers.GetBlogPosts)
	blog.Get("/:id", middleware.OptionalAuth(), controllers.GetBlogPost)
	blog.Post("/", middleware.Protected(), middleware.RequireAdmin(), controllers.CreateBlogPost)
	blog.Put("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.UpdateBlogPost)
	blog.Post("/:id/cover", middleware.Protected(), middleware.RequireAdmin(), controllers.UploadBlogCover)
	blog.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.DeleteBlogPost)
}
