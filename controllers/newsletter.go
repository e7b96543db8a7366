package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/db"
	"github.com/juridx/juridx-api/models"
	"github.com/juridx/juridx-api/utils"
	"github.com/juridx/juridx-api/validate"
)

type subscribeInput struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// Subscribe adds an email to the newsletter. A previously unsubscribed email
// is reactivated in place; an active one conflicts.
func Subscribe(c *fiber.Ctx) error {
	input := new(subscribeInput)
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

	var existing models.Newsletter
	if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		if existing.Active {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Cet email est déjà abonné à notre newsletter",
			})
		}

		updates := map[string]interface{}{"active": true}
		if input.Name != "" {
			updates["name"] = input.Name
		}
		if err := db.DB.Model(&existing).Updates(updates).Error; err != nil {
			log.Printf("Newsletter reactivation error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erreur interne du serveur",
			})
		}
		return c.JSON(fiber.Map{
			"message": "Abonnement réactivé avec succès",
		})
	}

	subscription := models.Newsletter{
		Email:  input.Email,
		Name:   input.Name,
		Active: true,
	}
	if err := db.DB.Create(&subscription).Error; err != nil {
		log.Printf("Newsletter subscription error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Abonnement à la newsletter réussi",
	})
}

// Unsubscribe soft-deactivates a subscription; the row stays so that a
// re-subscribe reactivates it.
func Unsubscribe(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email requis",
		})
	}

	var subscription models.Newsletter
	if db.DB.Where("email = ?", email).First(&subscription).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Abonnement non trouvé",
		})
	}

	if err := db.DB.Model(&subscription).Update("active", false).Error; err != nil {
		log.Printf("Newsletter unsubscribe error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Désabonnement réussi",
	})
}

// GetSubscribers lists newsletter subscriptions for the back office.
func GetSubscribers(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)

	query := db.DB.Model(&models.Newsletter{})
	if active := c.Query("active"); active != "" {
		query = query.Where("active = ?", active == "true")
	}

	var total int64
	query.Count(&total)

	var subscribers []models.Newsletter
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&subscribers).Error
	if err != nil {
		log.Printf("Subscribers fetch error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	return c.JSON(fiber.Map{
		"subscribers": subscribers,
		"pagination":  utils.NewPagination(page, limit, total),
	})
}

// DeleteSubscriber hard-deletes a subscription row.
func DeleteSubscriber(c *fiber.Ctx) error {
	var subscription models.Newsletter
	if err := db.DB.First(&subscription, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Abonnement non trouvé",
		})
	}

	if err := db.DB.Delete(&subscription).Error; err != nil {
		log.Printf("Subscriber deletion error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Abonnement supprimé avec succès",
	})
}
