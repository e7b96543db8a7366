package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/db"
	"github.com/juridx/juridx-api/models"
	"github.com/juridx/juridx-api/utils"
	"github.com/juridx/juridx-api/validate"
)

type createContactInput struct {
	FirstName string `json:"firstName" validate:"required,min=1"`
	LastName  string `json:"lastName" validate:"required,min=1"`
	Email     string `json:"email" validate:"required,email"`
	Company   string `json:"company"`
	Message   string `json:"message" validate:"required,min=10"`
}

// CreateContact persists a contact inquiry and attempts two notification
// emails: an internal alert and a client acknowledgment. Email failure never
// fails the request; the response carries a warning instead.
func CreateContact(c *fiber.Ctx) error {
	input := new(createContactInput)
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

	contact := models.Contact{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Company:   input.Company,
		Message:   input.Message,
	}
	if err := db.DB.Create(&contact).Error; err != nil {
		log.Printf("Contact creation error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	response := fiber.Map{
		"message": "Contact sauvegardé avec succès",
		"contact": fiber.Map{"id": contact.ID},
	}

	if !utils.IsMailConfigured() {
		log.Println("Email service not configured, skipping contact notifications")
		response["warning"] = "Email service not configured"
		return c.JSON(response)
	}

	if err := utils.SendContactAlert(&contact); err != nil {
		log.Printf("Failed to send contact alert for %d: %v", contact.ID, err)
		response["warning"] = "Failed to send email notification"
		return c.JSON(response)
	}
	if err := utils.SendContactAcknowledgment(&contact); err != nil {
		log.Printf("Failed to send contact acknowledgment for %d: %v", contact.ID, err)
	}

	response["message"] = "Email sent successfully"
	return c.JSON(response)
}

// GetContacts lists contact inquiries for the back office.
func GetContacts(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)

	query := db.DB.Model(&models.Contact{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var contacts []models.Contact
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&contacts).Error
	if err != nil {
		log.Printf("Contacts fetch error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	return c.JSON(fiber.Map{
		"contacts":   contacts,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

// GetContact returns a single contact inquiry.
func GetContact(c *fiber.Ctx) error {
	var contact models.Contact
	if err := db.DB.First(&contact, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Contact non trouvé",
		})
	}
	return c.JSON(fiber.Map{"contact": contact})
}

type updateContactInput struct {
	Status *string `json:"status" validate:"nullable,in=pending contacted resolved archived"`
}

// UpdateContact changes the processing status of an inquiry.
func UpdateContact(c *fiber.Ctx) error {
	input := new(updateContactInput)
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

	var contact models.Contact
	if err := db.DB.First(&contact, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Contact non trouvé",
		})
	}

	if input.Status != nil {
		if err := db.DB.Model(&contact).Update("status", *input.Status).Error; err != nil {
			log.Printf("Contact update error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erreur interne du serveur",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Contact mis à jour avec succès",
		"contact": contact,
	})
}

// DeleteContact removes an inquiry.
func DeleteContact(c *fiber.Ctx) error {
	var contact models.Contact
	if err := db.DB.First(&contact, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Contact non trouvé",
		})
	}

	if err := db.DB.Delete(&contact).Error; err != nil {
		log.Printf("Contact deletion error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Contact supprimé avec succès",
	})
}
