package controllers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juridx/juridx-api/db"
	"github.com/juridx/juridx-api/models"
)

func TestCreateTestimonial_AwaitsModeration(t *testing.T) {
	app := setupTestApp(t)

	status, body := doJSON(t, app, jsonRequest("POST", "/api/testimonials/", map[string]interface{}{
		"name":    "Nadia Cherkaoui",
		"role":    "Directrice Générale",
		"company": "Medina Export",
		"content": "Un accompagnement juridique remarquable du début à la fin.",
	}))
	require.Equal(t, 201, status)

	testimonial := body["testimonial"].(map[string]interface{})
	assert.Equal(t, false, testimonial["approved"])
	assert.Equal(t, "pending", testimonial["status"])
	assert.Equal(t, float64(5), testimonial["rating"], "rating defaults to 5")
}

func TestCreateTestimonial_StatusApprovedMapsToFlag(t *testing.T) {
	app := setupTestApp(t)

	status, body := doJSON(t, app, jsonRequest("POST", "/api/testimonials/", map[string]interface{}{
		"name":    "Nadia Cherkaoui",
		"role":    "Directrice Générale",
		"content": "Un accompagnement juridique remarquable du début à la fin.",
		"status":  "approved",
		"rating":  4,
	}))
	require.Equal(t, 201, status)

	testimonial := body["testimonial"].(map[string]interface{})
	assert.Equal(t, true, testimonial["approved"])
	assert.Equal(t, "approved", testimonial["status"])
	assert.Equal(t, float64(4), testimonial["rating"])
}

func TestCreateTestimonial_InvalidRating(t *testing.T) {
	app := setupTestApp(t)

	status, body := doJSON(t, app, jsonRequest("POST", "/api/testimonials/", map[string]interface{}{
		"name":    "Nadia",
		"role":    "DG",
		"content": "Un accompagnement juridique remarquable.",
		"rating":  7,
	}))
	require.Equal(t, 400, status)
	assert.Equal(t, []string{"rating"}, detailFields(body))
}

func TestGetTestimonials_PublicSeesApprovedOnly(t *testing.T) {
	app := setupTestApp(t)
	admin := createAdmin(t)

	approved := models.Testimonial{Name: "A", Role: "DG", Content: "Très satisfaite du service rendu.", Approved: true}
	pending := models.Testimonial{Name: "B", Role: "CEO", Content: "Service efficace et réactif, merci."}
	require.NoError(t, db.DB.Create(&approved).Error)
	require.NoError(t, db.DB.Create(&pending).Error)

	status, body := doJSON(t, app, jsonRequest("GET", "/api/testimonials/", nil))
	require.Equal(t, 200, status)
	list := body["testimonials"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].(map[string]interface{})["name"])
	assert.Nil(t, body["pagination"], "public listing is not paginated")

	req := jsonRequest("GET", "/api/testimonials/", nil)
	req.AddCookie(authCookie(t, admin))
	status, body = doJSON(t, app, req)
	require.Equal(t, 200, status)
	assert.Len(t, body["testimonials"].([]interface{}), 2)
	assert.NotNil(t, body["pagination"])
}

func TestUpdateTestimonial_ApproveViaStatus(t *testing.T) {
	app := setupTestApp(t)
	admin := createAdmin(t)

	testimonial := models.Testimonial{Name: "B", Role: "CEO", Content: "Service efficace et réactif, merci."}
	require.NoError(t, db.DB.Create(&testimonial).Error)

	req := jsonRequest("PATCH", fmt.Sprintf("/api/testimonials/%d", testimonial.ID),
		map[string]interface{}{"status": "approved"})
	req.AddCookie(authCookie(t, admin))
	status, body := doJSON(t, app, req)
	require.Equal(t, 200, status)
	assert.Equal(t, "approved", body["testimonial"].(map[string]interface{})["status"])

	var reloaded models.Testimonial
	require.NoError(t, db.DB.First(&reloaded, testimonial.ID).Error)
	assert.True(t, reloaded.Approved)
}

func TestUpdateTestimonial_RevokeViaApprovedFlag(t *testing.T) {
	app := setupTestApp(t)
	admin := createAdmin(t)

	testimonial := models.Testimonial{Name: "B", Role: "CEO", Content: "Service efficace et réactif, merci.", Approved: true}
	require.NoError(t, db.DB.Create(&testimonial).Error)

	req := jsonRequest("PATCH", fmt.Sprintf("/api/testimonials/%d", testimonial.ID),
		map[string]interface{}{"approved": false})
	req.AddCookie(authCookie(t, admin))
	status, _ := doJSON(t, app, req)
	require.Equal(t, 200, status)

	var reloaded models.Testimonial
	require.NoError(t, db.DB.First(&reloaded, testimonial.ID).Error)
	assert.False(t, reloaded.Approved)
}

func TestDeleteTestimonial_RequiresAdmin(t *testing.T) {
	app := setupTestApp(t)
	client := createClient(t)

	testimonial := models.Testimonial{Name: "B", Role: "CEO", Content: "Service efficace et réactif, merci."}
	require.NoError(t, db.DB.Create(&testimonial).Error)

	req := jsonRequest("DELETE", fmt.Sprintf("/api/testimonials/%d", testimonial.ID), nil)
	req.AddCookie(authCookie(t, client))
	status, _ := doJSON(t, app, req)
	assert.Equal(t, 403, status)
}
