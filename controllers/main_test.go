package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/juridx/juridx-api/db"
	"github.com/juridx/juridx-api/middleware"
	"github.com/juridx/juridx-api/models"
)

// setupTestApp swaps the global DB for a fresh in-memory sqlite instance and
// returns an app with the same routing as main.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	db.DB = conn
	db.Migrate()

	app := fiber.New()

	// Registered inline rather than through the routes package, which would
	// import-cycle back into this one.
	auth := app.Group("/api/auth")
	auth.Post("/register", Register)
	auth.Post("/login", Login)
	auth.Get("/me", middleware.Protected(), Me)
	auth.Post("/logout", middleware.Protected(), Logout)

	service := app.Group("/api/services")
	service.Get("/", GetServices)
	service.Get("/:id", GetService)
	service.Post("/", middleware.Protected(), middleware.RequireAdmin(), CreateService)
	service.Put("/:id", middleware.Protected(), middleware.RequireAdmin(), UpdateService)
	service.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), DeleteService)

	testimonial := app.Group("/api/testimonials")
	testimonial.Get("/", middleware.OptionalAuth(), GetTestimonials)
	testimonial.Post("/", CreateTestimonial)
	testimonial.Patch("/:id", middleware.Protected(), middleware.RequireAdmin(), UpdateTestimonial)
	testimonial.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), DeleteTestimonial)

	contact := app.Group("/api/contact")
	contact.Post("/", CreateContact)
	contact.Get("/", middleware.Protected(), middleware.RequireAdmin(), GetContacts)
	contact.Get("/:id", middleware.Protected(), middleware.RequireAdmin(), GetContact)
	contact.Put("/:id", middleware.Protected(), middleware.RequireAdmin(), UpdateContact)
	contact.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), DeleteContact)

	consultation := app.Group("/api/consultations")
	consultation.Post("/", middleware.OptionalAuth(), CreateConsultation)
	consultation.Get("/", middleware.Protected(), GetConsultations)
	consultation.Post("/batch-status", middleware.Protected(), middleware.RequireAdmin(), BatchUpdateStatus)
	consultation.Get("/:id", middleware.Protected(), GetConsultation)
	consultation.Put("/:id", middleware.Protected(), middleware.RequireAdmin(), UpdateConsultation)
	consultation.Patch("/:id/schedule", middleware.Protected(), middleware.RequireAdmin(), ScheduleConsultation)
	consultation.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), DeleteConsultation)

	newsletter := app.Group("/api/newsletter")
	newsletter.Post("/", Subscribe)
	newsletter.Delete("/", Unsubscribe)
	newsletter.Get("/", middleware.Protected(), middleware.RequireAdmin(), GetSubscribers)
	newsletter.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), DeleteSubscriber)

	blog := app.Group("/api/blog")
	blog.Get("/", middleware.OptionalAuth(), GetBlogPosts)
	blog.Get("/:id", middleware.OptionalAuth(), GetBlogPost)
	blog.Post("/", middleware.Protected(), middleware.RequireAdmin(), CreateBlogPost)
	blog.Put("/:id", middleware.Protected(), middleware.RequireAdmin(), UpdateBlogPost)
	blog.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), DeleteBlogPost)

	admin := app.Group("/api/admin", middleware.Protected(), middleware.RequireAdmin())
	admin.Get("/dashboard", GetDashboard)
	admin.Get("/settings", GetSettings)
	admin.Put("/settings/:key", UpsertSetting)

	user := app.Group("/api/users")
	user.Get("/", middleware.Protected(), middleware.RequireAdmin(), GetUsers)
	user.Put("/:id", middleware.Protected(), UpdateUser)
	user.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), DeleteUser)

	return app
}

func createUser(t *testing.T, name, email string, role models.Role) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Name: name, Email: email, Password: string(hashed), Role: role}
	require.NoError(t, db.DB.Create(&user).Error)
	return &user
}

func createAdmin(t *testing.T) *models.User {
	return createUser(t, "Admin", "admin@juridx.com", models.RoleAdmin)
}

func createClient(t *testing.T) *models.User {
	return createUser(t, "Client", "client@example.com", models.RoleClient)
}

func authCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()
	token, err := issueToken(user)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.AuthCookieName, Value: token}
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func doJSON(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	body := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp.StatusCode, body
}

// detailFields extracts the field names from a validation error response.
func detailFields(body map[string]interface{}) []string {
	details, _ := body["details"].([]interface{})
	fields := make([]string, 0, len(details))
	for _, d := range details {
		entry, _ := d.(map[string]interface{})
		field, _ := entry["field"].(string)
		fields = append(fields, field)
	}
	return fields
}
