package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juridx/juridx-api/db"
	"github.com/juridx/juridx-api/middleware"
	"github.com/juridx/juridx-api/models"
)

func TestRegister(t *testing.T) {
	app := setupTestApp(t)

	req := jsonRequest("POST", "/api/auth/register", map[string]interface{}{
		"name":     "Yasmine",
		"email":    "yasmine@example.com",
		"password": "secret123",
		"role":     "ADMIN", // must be ignored
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)
	assert.NotNil(t, findCookie(resp.Cookies(), middleware.AuthCookieName), "auth cookie is set")
	resp.Body.Close()

	var user models.User
	require.NoError(t, db.DB.Where("email = ?", "yasmine@example.com").First(&user).Error)
	assert.Equal(t, models.RoleClient, user.Role, "self-registration never grants ADMIN")
	assert.NotEqual(t, "secret123", user.Password, "password is stored hashed")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app := setupTestApp(t)
	createUser(t, "Yasmine", "yasmine@example.com", models.RoleClient)

	status, body := doJSON(t, app, jsonRequest("POST", "/api/auth/register", map[string]interface{}{
		"name":     "Yasmine",
		"email":    "yasmine@example.com",
		"password": "secret123",
	}))
	require.Equal(t, 409, status)
	assert.Equal(t, "Un utilisateur avec cet email existe déjà", body["error"])
}

func TestRegister_ShortPassword(t *testing.T) {
	app := setupTestApp(t)

	status, body := doJSON(t, app, jsonRequest("POST", "/api/auth/register", map[string]interface{}{
		"name":     "Yasmine",
		"email":    "yasmine@example.com",
		"password": "abc",
	}))
	require.Equal(t, 400, status)
	assert.Equal(t, []string{"password"}, detailFields(body))
}

func TestLogin(t *testing.T) {
	app := setupTestApp(t)
	createClient(t) // password123

	status, body := doJSON(t, app, jsonRequest("POST", "/api/auth/login", map[string]interface{}{
		"email":    "client@example.com",
		"password": "mauvais",
	}))
	require.Equal(t, 401, status)
	assert.Equal(t, "Identifiants invalides", body["error"])

	status, body = doJSON(t, app, jsonRequest("POST", "/api/auth/login", map[string]interface{}{
		"email":    "client@example.com",
		"password": "password123",
	}))
	require.Equal(t, 200, status)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "client@example.com", user["email"])
	assert.Nil(t, user["password"], "password never leaves the server")
	assert.NotEmpty(t, body["token"])
}

func TestLogin_UnknownEmail(t *testing.T) {
	app := setupTestApp(t)

	status, body := doJSON(t, app, jsonRequest("POST", "/api/auth/login", map[string]interface{}{
		"email":    "inconnu@example.com",
		"password": "password123",
	}))
	require.Equal(t, 401, status)
	assert.Equal(t, "Identifiants invalides", body["error"])
}

func TestMe(t *testing.T) {
	app := setupTestApp(t)
	client := createClient(t)

	status, _ := doJSON(t, app, jsonRequest("GET", "/api/auth/me", nil))
	assert.Equal(t, 401, status, "no token, no profile")

	req := jsonRequest("GET", "/api/auth/me", nil)
	req.AddCookie(authCookie(t, client))
	status, body := doJSON(t, app, req)
	require.Equal(t, 200, status)
	assert.Equal(t, "client@example.com", body["user"].(map[string]interface{})["email"])
}

func TestMe_BearerHeaderAlsoAccepted(t *testing.T) {
	app := setupTestApp(t)
	client := createClient(t)

	token, err := issueToken(client)
	require.NoError(t, err)

	req := jsonRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	status, _ := doJSON(t, app, req)
	assert.Equal(t, 200, status)
}

func TestLogout_ExpiresCookie(t *testing.T) {
	app := setupTestApp(t)
	client := createClient(t)

	req := jsonRequest("POST", "/api/auth/logout", nil)
	req.AddCookie(authCookie(t, client))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	cookie := findCookie(resp.Cookies(), middleware.AuthCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
