package controllers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juridx/juridx-api/db"
	"github.com/juridx/juridx-api/models"
)

func TestCreateBlogPost(t *testing.T) {
	app := setupTestApp(t)
	admin := createAdmin(t)

	req := jsonRequest("POST", "/api/blog/", map[string]interface{}{
		"title":     "Implanter une filiale au Maroc",
		"slug":      "implanter-une-filiale-au-maroc",
		"content":   "Les étapes juridiques essentielles.",
		"published": true,
		"tags":      []string{"droit des affaires", "international"},
	})
	req.AddCookie(authCookie(t, admin))
	status, body := doJSON(t, app, req)

	require.Equal(t, 201, status)
	post := body["post"].(map[string]interface{})
	assert.Equal(t, float64(admin.ID), post["authorId"])
	assert.Equal(t, []interface{}{"droit des affaires", "international"}, post["tags"])
}

func TestCreateBlogPost_SlugConflict(t *testing.T) {
	app := setupTestApp(t)
	admin := createAdmin(t)

	payload := map[string]interface{}{
		"title":   "Premier article",
		"slug":    "premier-article",
		"content": "Contenu.",
	}
	req := jsonRequest("POST", "/api/blog/", payload)
	req.AddCookie(authCookie(t, admin))
	status, _ := doJSON(t, app, req)
	require.Equal(t, 201, status)

	req = jsonRequest("POST", "/api/blog/", payload)
	req.AddCookie(authCookie(t, admin))
	status, body := doJSON(t, app, req)
	require.Equal(t, 409, status)
	assert.Equal(t, "Un article avec ce slug existe déjà", body["error"])
}

func TestUpdateBlogPost_KeepingOwnSlugSucceeds(t *testing.T) {
	app := setupTestApp(t)
	admin := createAdmin(t)
	post := seedBlogPost(t, admin.ID, "mon-article", true)

	req := jsonRequest("PUT", fmt.Sprintf("/api/blog/%d", post.ID), map[string]interface{}{
		"title": "Titre révisé",
		"slug":  "mon-article",
	})
	req.AddCookie(authCookie(t, admin))
	status, body := doJSON(t, app, req)

	require.Equal(t, 200, status)
	assert.Equal(t, "Titre révisé", body["post"].(map[string]interface{})["title"])
}

func TestUpdateBlogPost_TakingAnotherSlugConflicts(t *testing.T) {
	app := setupTestApp(t)
	admin := createAdmin(t)
	seedBlogPost(t, admin.ID, "article-un", true)
	second := seedBlogPost(t, admin.ID, "article-deux", true)

	req := jsonRequest("PUT", fmt.Sprintf("/api/blog/%d", second.ID),
		map[string]interface{}{"slug": "article-un"})
	req.AddCookie(authCookie(t, admin))
	status, _ := doJSON(t, app, req)
	assert.Equal(t, 409, status)
}

func TestGetBlogPost_BySlugAndById(t *testing.T) {
	app := setupTestApp(t)
	admin := createAdmin(t)
	post := seedBlogPost(t, admin.ID, "guide-fiscalite", true)

	status, body := doJSON(t, app, jsonRequest("GET", "/api/blog/guide-fiscalite", nil))
	require.Equal(t, 200, status)
	assert.Equal(t, float64(post.ID), body["post"].(map[string]interface{})["id"])

	status, body = doJSON(t, app, jsonRequest("GET", fmt.Sprintf("/api/blog/%d", post.ID), nil))
	require.Equal(t, 200, status)
	assert.Equal(t, "guide-fiscalite", body["post"].(map[string]interface{})["slug"])
}

func TestGetBlogPost_DraftHiddenFromPublic(t *testing.T) {
	app := setupTestApp(t)
	admin := createAdmin(t)
	seedBlogPost(t, admin.ID, "brouillon", false)

	status, _ := doJSON(t, app, jsonRequest("GET", "/api/blog/brouillon", nil))
	assert.Equal(t, 404, status)

	req := jsonRequest("GET", "/api/blog/brouillon", nil)
	req.AddCookie(authCookie(t, admin))
	status, _ = doJSON(t, app, req)
	assert.Equal(t, 200, status)
}

func TestGetBlogPosts_Visibility(t *testing.T) {
	app := setupTestApp(t)
	admin := createAdmin(t)
	seedBlogPost(t, admin.ID, "publie", true)
	seedBlogPost(t, admin.ID, "brouillon", false)

	status, body := doJSON(t, app, jsonRequest("GET", "/api/blog/", nil))
	require.Equal(t, 200, status)
	assert.Len(t, body["posts"].([]interface{}), 1)

	req := jsonRequest("GET", "/api/blog/?all=true", nil)
	req.AddCookie(authCookie(t, admin))
	status, body = doJSON(t, app, req)
	require.Equal(t, 200, status)
	assert.Len(t, body["posts"].([]interface{}), 2)

	// all=true without the admin role falls back to published-only
	status, body = doJSON(t, app, jsonRequest("GET", "/api/blog/?all=true", nil))
	require.Equal(t, 200, status)
	assert.Len(t, body["posts"].([]interface{}), 1)
}

func TestGetBlogPosts_TagFilter(t *testing.T) {
	app := setupTestApp(t)
	admin := createAdmin(t)

	tagged := seedBlogPost(t, admin.ID, "fiscalite-internationale", true)
	tagged.Tags = []string{"fiscalite"}
	require.NoError(t, db.DB.Save(tagged).Error)
	seedBlogPost(t, admin.ID, "autre-sujet", true)

	status, body := doJSON(t, app, jsonRequest("GET", "/api/blog/?tag=fiscalite", nil))
	require.Equal(t, 200, status)
	posts := body["posts"].([]interface{})
	require.Len(t, posts, 1)
	assert.Equal(t, "fiscalite-internationale", posts[0].(map[string]interface{})["slug"])
}

func TestCreateBlogPost_RequiresAdmin(t *testing.T) {
	app := setupTestApp(t)
	client := createClient(t)

	req := jsonRequest("POST", "/api/blog/", map[string]interface{}{
		"title": "T", "slug": "t", "content": "C",
	})
	req.AddCookie(authCookie(t, client))
	status, _ := doJSON(t, app, req)
	assert.Equal(t, 403, status)
}

func seedBlogPost(t *testing.T, authorID uint, slug string, published bool) *models.BlogPost {
	t.Helper()
	post := models.BlogPost{
		Title:     "Article " + slug,
		Slug:      slug,
		Content:   "Contenu de l'article.",
		Published: published,
		AuthorID:  authorID,
	}
	require.NoError(t, db.DB.Create(&post).Error)
	return &post
}
