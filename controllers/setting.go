package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/db"
	"github.com/juridx/juridx-api/models"
	"github.com/juridx/juridx-api/validate"
)

// GetSettings returns every configuration entry.
func GetSettings(c *fiber.Ctx) error {
	var settings []models.Setting
	if err := db.DB.Order("key ASC").Find(&settings).Error; err != nil {
		log.Printf("Settings fetch error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}
	return c.JSON(fiber.Map{"settings": settings})
}

type upsertSettingInput struct {
	Value string `json:"value" validate:"required"`
	Type  string `json:"type" validate:"nullable,in=string number boolean json"`
}

// UpsertSetting creates or updates the setting addressed by key.
func UpsertSetting(c *fiber.Ctx) error {
	input := new(upsertSettingInput)
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

	settingType := models.SettingType(input.Type)
	if settingType == "" {
		settingType = models.SettingString
	}

	key := c.Params("key")
	var setting models.Setting
	if db.DB.Where("key = ?", key).First(&setting).RowsAffected > 0 {
		updates := map[string]interface{}{"value": input.Value, "type": settingType}
		if err := db.DB.Model(&setting).Updates(updates).Error; err != nil {
			log.Printf("Setting update error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erreur interne du serveur",
			})
		}
	} else {
		setting = models.Setting{Key: key, Value: input.Value, Type: settingType}
		if err := db.DB.Create(&setting).Error; err != nil {
			log.Printf("Setting creation error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erreur interne du serveur",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Paramètre enregistré avec succès",
		"setting": setting,
	})
}
