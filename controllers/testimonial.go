package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/db"
	"github.com/juridx/juridx-api/middleware"
	"github.com/juridx/juridx-api/models"
	"github.com/juridx/juridx-api/utils"
	"github.com/juridx/juridx-api/validate"
)

// GetTestimonials lists testimonials. The public sees approved ones only;
// admins see everything with pagination.
func GetTestimonials(c *fiber.Ctx) error {
	isAdmin := middleware.UserRole(c) == models.RoleAdmin

	query := db.DB.Model(&models.Testimonial{})
	if !isAdmin {
		query = query.Where("approved = ?", true)
	}
	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}

	var testimonials []models.Testimonial
	query = query.Order("featured DESC, created_at DESC")

	if isAdmin {
		page, limit := utils.ParsePagination(c)
		var total int64
		query.Count(&total)

		if err := query.Offset((page - 1) * limit).Limit(limit).Find(&testimonials).Error; err != nil {
			log.Printf("Testimonials fetch error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erreur interne du serveur",
			})
		}
		return c.JSON(fiber.Map{
			"testimonials": testimonials,
			"pagination":   utils.NewPagination(page, limit, total),
		})
	}

	if err := query.Find(&testimonials).Error; err != nil {
		log.Printf("Testimonials fetch error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}
	return c.JSON(fiber.Map{"testimonials": testimonials})
}

type createTestimonialInput struct {
	Name     string `json:"name" validate:"required,min=1"`
	Role     string `json:"role" validate:"required,min=1"`
	Company  string `json:"company"`
	Content  string `json:"content" validate:"required,min=10"`
	Rating   int    `json:"rating" validate:"nullable,min=1,max=5"`
	Featured bool   `json:"featured"`
	Status   string `json:"status" validate:"nullable,in=approved pending"`
}

// CreateTestimonial records a client testimonial. An incoming status field
// maps onto the stored approval flag; anything but "approved" leaves the
// testimonial awaiting moderation.
func CreateTestimonial(c *fiber.Ctx) error {
	input := new(createTestimonialInput)
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

	rating := input.Rating
	if rating == 0 {
		rating = 5
	}

	testimonial := models.Testimonial{
		Name:     input.Name,
		Role:     input.Role,
		Company:  input.Company,
		Content:  input.Content,
		Rating:   rating,
		Featured: input.Featured,
		Approved: input.Status == "approved",
	}
	if err := db.DB.Create(&testimonial).Error; err != nil {
		log.Printf("Testimonial creation error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}
	testimonial.Status = testimonial.DerivedStatus()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Témoignage créé avec succès.",
		"testimonial": testimonial,
	})
}

type updateTestimonialInput struct {
	Name     *string `json:"name" validate:"nullable,min=1"`
	Role     *string `json:"role" validate:"nullable,min=1"`
	Company  *string `json:"company"`
	Content  *string `json:"content" validate:"nullable,min=10"`
	Rating   *int    `json:"rating" validate:"nullable,min=1,max=5"`
	Featured *bool   `json:"featured"`
	Approved *bool   `json:"approved"`
	Status   *string `json:"status" validate:"nullable,in=approved pending"`
}

// UpdateTestimonial applies a partial moderation update. Both the raw
// approved flag and the derived status field are accepted.
func UpdateTestimonial(c *fiber.Ctx) error {
	input := new(updateTestimonialInput)
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

	var testimonial models.Testimonial
	if err := db.DB.First(&testimonial, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Témoignage non trouvé",
		})
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Role != nil {
		updates["role"] = *input.Role
	}
	if input.Company != nil {
		updates["company"] = *input.Company
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.Rating != nil {
		updates["rating"] = *input.Rating
	}
	if input.Featured != nil {
		updates["featured"] = *input.Featured
	}
	if input.Approved != nil {
		updates["approved"] = *input.Approved
	}
	if input.Status != nil {
		updates["approved"] = *input.Status == "approved"
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&testimonial).Updates(updates).Error; err != nil {
			log.Printf("Testimonial update error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erreur interne du serveur",
			})
		}
	}
	testimonial.Status = testimonial.DerivedStatus()

	return c.JSON(fiber.Map{
		"message":     "Témoignage mis à jour avec succès",
		"testimonial": testimonial,
	})
}

// DeleteTestimonial removes a testimonial.
func DeleteTestimonial(c *fiber.Ctx) error {
	var testimonial models.Testimonial
	if err := db.DB.First(&testimonial, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Témoignage non trouvé",
		})
	}

	if err := db.DB.Delete(&testimonial).Error; err != nil {
		log.Printf("Testimonial deletion error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Témoignage supprimé avec succès",
	})
}
