package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/db"
	"github.com/juridx/juridx-api/models"
	"github.com/juridx/juridx-api/validate"
)

// GetServices lists the service catalogue in display order. Public.
func GetServices(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Service{})
	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}

	var services []models.Service
	if err := query.Order("\"order\" ASC").Find(&services).Error; err != nil {
		log.Printf("Services fetch error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	return c.JSON(fiber.Map{"services": services})
}

// GetService returns a single service.
func GetService(c *fiber.Ctx) error {
	var service models.Service
	if err := db.DB.First(&service, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service non trouvé",
		})
	}
	return c.JSON(fiber.Map{"service": service})
}

type createServiceInput struct {
	Title       string `json:"title" validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=10"`
	Icon        string `json:"icon" validate:"required"`
	Featured    bool   `json:"featured"`
	Order       int    `json:"order"`
}

// CreateService adds a service to the catalogue.
func CreateService(c *fiber.Ctx) error {
	input := new(createServiceInput)
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

	service := models.Service{
		Title:       input.Title,
		Description: input.Description,
		Icon:        input.Icon,
		Featured:    input.Featured,
		Order:       input.Order,
	}
	if err := db.DB.Create(&service).Error; err != nil {
		log.Printf("Service creation error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Service créé avec succès",
		"service": service,
	})
}

type updateServiceInput struct {
	Title       *string `json:"title" validate:"nullable,min=1"`
	Description *string `json:"description" validate:"nullable,min=10"`
	Icon        *string `json:"icon"`
	Featured    *bool   `json:"featured"`
	Order       *int    `json:"order"`
}

// UpdateService applies a partial update to a service.
func UpdateService(c *fiber.Ctx) error {
	input := new(updateServiceInput)
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

	var service models.Service
	if err := db.DB.First(&service, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service non trouvé",
		})
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Icon != nil {
		updates["icon"] = *input.Icon
	}
	if input.Featured != nil {
		updates["featured"] = *input.Featured
	}
	if input.Order != nil {
		updates["order"] = *input.Order
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&service).Updates(updates).Error; err != nil {
			log.Printf("Service update error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erreur interne du serveur",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Service mis à jour avec succès",
		"service": service,
	})
}

// DeleteService removes a service from the catalogue.
func DeleteService(c *fiber.Ctx) error {
	var service models.Service
	if err := db.DB.First(&service, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service non trouvé",
		})
	}

	if err := db.DB.Delete(&service).Error; err != nil {
		log.Printf("Service deletion error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Service supprimé avec succès",
	})
}
