package controllers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/db"
	"github.com/juridx/juridx-api/middleware"
	"github.com/juridx/juridx-api/models"
	"github.com/juridx/juridx-api/utils"
	"github.com/juridx/juridx-api/validate"
)

// GetBlogPosts lists posts. The public sees published posts only; admins may
// pass all=true to include drafts. Supports featured and tag filters.
func GetBlogPosts(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)

	query := db.DB.Model(&models.BlogPost{})
	showAll := c.Query("all") == "true" && middleware.UserRole(c) == models.RoleAdmin
	if !showAll {
		query = query.Where("published = ?", true)
	}
	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}
	if tag := c.Query("tag"); tag != "" {
		query = query.Where("tags LIKE ?", "%"+tag+"%")
	}

	var total int64
	query.Count(&total)

	var posts []models.BlogPost
	err := query.Preload("Author").
		Order("featured DESC, created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&posts).Error
	if err != nil {
		log.Printf("Blog posts fetch error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}
	for i := range posts {
		posts[i].Author = stripPassword(posts[i].Author)
	}

	return c.JSON(fiber.Map{
		"posts":      posts,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

// GetBlogPost returns one post, addressed by numeric id or slug. Drafts are
// only visible to admins.
func GetBlogPost(c *fiber.Ctx) error {
	param := c.Params("id")

	var post models.BlogPost
	var err error
	if _, convErr := strconv.Atoi(param); convErr == nil {
		err = db.DB.Preload("Author").First(&post, param).Error
	} else {
		err = db.DB.Preload("Author").Where("slug = ?", param).First(&post).Error
	}
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article non trouvé",
		})
	}

	if !post.Published && middleware.UserRole(c) != models.RoleAdmin {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article non trouvé",
		})
	}

	post.Author = stripPassword(post.Author)
	return c.JSON(fiber.Map{"post": post})
}

type createBlogPostInput struct {
	Title     string   `json:"title" validate:"required,min=1"`
	Slug      string   `json:"slug" validate:"required,min=1"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content" validate:"required,min=1"`
	Published bool     `json:"published"`
	Featured  bool     `json:"featured"`
	Tags      []string `json:"tags"`
}

// CreateBlogPost publishes a new article under the calling admin's name.
func CreateBlogPost(c *fiber.Ctx) error {
	input := new(createBlogPostInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if errs := validate.Struct(input); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Données invalides",
			"details": errs,
		})
	}

	var existing models.BlogPost
	if db.DB.Where("slug = ?", input.Slug).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Un article avec ce slug existe déjà",
		})
	}

	post := models.BlogPost{
		Title:     input.Title,
		Slug:      input.Slug,
		Excerpt:   input.Excerpt,
		Content:   input.Content,
		Published: input.Published,
		Featured:  input.Featured,
		Tags:      input.Tags,
		AuthorID:  middleware.UserID(c),
	}
	if err := db.DB.Create(&post).Error; err != nil {
		log.Printf("Blog post creation error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	db.DB.Preload("Author").First(&post, post.ID)
	post.Author = stripPassword(post.Author)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Article créé avec succès",
		"post":    post,
	})
}

type updateBlogPostInput struct {
	Title     *string   `json:"title" validate:"nullable,min=1"`
	Slug      *string   `json:"slug" validate:"nullable,min=1"`
	Excerpt   *string   `json:"excerpt"`
	Content   *string   `json:"content" validate:"nullable,min=1"`
	Published *bool     `json:"published"`
	Featured  *bool     `json:"featured"`
	Tags      *[]string `json:"tags"`
}

// UpdateBlogPost applies a partial update. Changing the slug re-checks
// uniqueness against every other post.
func UpdateBlogPost(c *fiber.Ctx) error {
	input := new(updateBlogPostInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if errs := validate.Struct(input); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Données invalides",
			"details": errs,
		})
	}

	var post models.BlogPost
	if err := db.DB.First(&post, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article non trouvé",
		})
	}

	if input.Slug != nil && *input.Slug != post.Slug {
		var existing models.BlogPost
		if db.DB.Where("slug = ? AND id <> ?", *input.Slug, post.ID).First(&existing).RowsAffected > 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Un article avec ce slug existe déjà",
			})
		}
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Slug != nil {
		post.Slug = *input.Slug
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Published != nil {
		post.Published = *input.Published
	}
	if input.Featured != nil {
		post.Featured = *input.Featured
	}
	if input.Tags != nil {
		post.Tags = *input.Tags
	}

	// Save so the BeforeSave hook reserializes tags.
	if err := db.DB.Save(&post).Error; err != nil {
		log.Printf("Blog post update error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	db.DB.Preload("Author").First(&post, post.ID)
	post.Author = stripPassword(post.Author)

	return c.JSON(fiber.Map{
		"message": "Article mis à jour avec succès",
		"post":    post,
	})
}

// UploadBlogCover stores a cover image for a post on Cloudinary and saves
// the resulting URL.
func UploadBlogCover(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := db.DB.First(&post, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article non trouvé",
		})
	}

	if !utils.IsCloudinaryConfigured() {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Service d'upload non configuré",
		})
	}

	fileHeader, err := c.FormFile("cover")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Données invalides",
			"details": []validate.FieldError{{
				Field:   "cover",
				Message: "Le champ cover est requis",
			}},
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}
	defer file.Close()

	url, err := utils.UploadCoverImage(file, fmt.Sprintf("post-%d", post.ID))
	if err != nil {
		log.Printf("Cover upload error for post %d: %v", post.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	if err := db.DB.Model(&post).Update("cover_image", url).Error; err != nil {
		log.Printf("Cover URL save error for post %d: %v", post.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Image de couverture mise à jour avec succès",
		"post":    post,
	})
}

// DeleteBlogPost removes an article.
func DeleteBlogPost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := db.DB.First(&post, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article non trouvé",
		})
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		log.Printf("Blog post deletion error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Article supprimé avec succès",
	})
}
