package controllers

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juridx/juridx-api/db"
	"github.com/juridx/juridx-api/models"
)

func TestGetDashboard(t *testing.T) {
	app := setupTestApp(t)
	admin := createAdmin(t)

	require.NoError(t, db.DB.Create(&models.Contact{
		FirstName: "A", LastName: "B", Email: "a@example.com", Message: "Message assez long valide",
	}).Error)
	require.NoError(t, db.DB.Create(&models.Consultation{
		FirstName: "C", LastName: "D", Email: "c@example.com",
		Description: "Description suffisamment longue pour la demande",
	}).Error)
	require.NoError(t, db.DB.Create(&models.Newsletter{Email: "n@example.com", Active: true}).Error)

	req := jsonRequest("GET", "/api/admin/dashboard", nil)
	req.AddCookie(authCookie(t, admin))
	status, body := doJSON(t, app, req)
	require.Equal(t, 200, status)

	stats := body["statistics"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["contacts"].(map[string]interface{})["total"])
	assert.Equal(t, float64(1), stats["contacts"].(map[string]interface{})["pending"])
	assert.Equal(t, float64(1), stats["consultations"].(map[string]interface{})["pending"])
	assert.Equal(t, float64(1), stats["newsletter"].(map[string]interface{})["subscribers"])
	assert.Equal(t, float64(1), stats["users"].(map[string]interface{})["total"])

	assert.Len(t, body["recentContacts"].([]interface{}), 1)
	assert.Len(t, body["recentConsultations"].([]interface{}), 1)

	months := body["monthlyContacts"].([]interface{})
	require.Len(t, months, 6)
	now := time.Now()
	last := months[5].(map[string]interface{})
	assert.Equal(t, fmt.Sprintf("%04d-%02d", now.Year(), int(now.Month())), last["month"])
	assert.Equal(t, float64(1), last["contacts"], "this month's contact lands in the last bin")
}

func TestGetDashboard_RequiresAdmin(t *testing.T) {
	app := setupTestApp(t)
	client := createClient(t)

	req := jsonRequest("GET", "/api/admin/dashboard", nil)
	req.AddCookie(authCookie(t, client))
	status, _ := doJSON(t, app, req)
	assert.Equal(t, 403, status)

	status, _ = doJSON(t, app, jsonRequest("GET", "/api/admin/dashboard", nil))
	assert.Equal(t, 401, status)
}

func TestUpsertSetting(t *testing.T) {
	app := setupTestApp(t)
	admin := createAdmin(t)

	req := jsonRequest("PUT", "/api/admin/settings/site_title",
		map[string]interface{}{"value": "JuridX"})
	req.AddCookie(authCookie(t, admin))
	status, body := doJSON(t, app, req)
	require.Equal(t, 200, status)
	setting := body["setting"].(map[string]interface{})
	assert.Equal(t, "site_title", setting["key"])
	assert.Equal(t, "string", setting["type"], "type defaults to string")

	// Same key again updates in place.
	req = jsonRequest("PUT", "/api/admin/settings/site_title",
		map[string]interface{}{"value": "JuridX Conseil Juridique", "type": "string"})
	req.AddCookie(authCookie(t, admin))
	status, _ = doJSON(t, app, req)
	require.Equal(t, 200, status)

	var count int64
	db.DB.Model(&models.Setting{}).Where("key = ?", "site_title").Count(&count)
	assert.Equal(t, int64(1), count)

	var reloaded models.Setting
	require.NoError(t, db.DB.Where("key = ?", "site_title").First(&reloaded).Error)
	assert.Equal(t, "JuridX Conseil Juridique", reloaded.Value)
}

func TestUpsertSetting_InvalidType(t *testing.T) {
	app := setupTestApp(t)
	admin := createAdmin(t)

	req := jsonRequest("PUT", "/api/admin/settings/max_items",
		map[string]interface{}{"value": "10", "type": "integer"})
	req.AddCookie(authCookie(t, admin))
	status, body := doJSON(t, app, req)
	require.Equal(t, 400, status)
	assert.Equal(t, []string{"type"}, detailFields(body))
}

func TestGetSettings(t *testing.T) {
	app := setupTestApp(t)
	admin := createAdmin(t)

	require.NoError(t, db.DB.Create(&models.Setting{Key: "b_key", Value: "2"}).Error)
	require.NoError(t, db.DB.Create(&models.Setting{Key: "a_key", Value: "1"}).Error)

	req := jsonRequest("GET", "/api/admin/settings", nil)
	req.AddCookie(authCookie(t, admin))
	status, body := doJSON(t, app, req)
	require.Equal(t, 200, status)

	settings := body["settings"].([]interface{})
	require.Len(t, settings, 2)
	assert.Equal(t, "a_key", settings[0].(map[string]interface{})["key"], "sorted by key")
}
