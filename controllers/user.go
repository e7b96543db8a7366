package controllers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/db"
	"github.com/juridx/juridx-api/middleware"
	"github.com/juridx/juridx-api/models"
	"github.com/juridx/juridx-api/utils"
	"github.com/juridx/juridx-api/validate"
)

// GetUsers lists accounts for the back office.
func GetUsers(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)

	var total int64
	db.DB.Model(&models.User{}).Count(&total)

	var users []models.User
	err := db.DB.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&users).Error
	if err != nil {
		log.Printf("Users fetch error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}
	for i := range users {
		users[i].Password = ""
	}

	return c.JSON(fiber.Map{
		"users":      users,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

type updateUserInput struct {
	Name  *string `json:"name" validate:"nullable,min=1"`
	Email *string `json:"email" validate:"nullable,email"`
	Role  *string `json:"role" validate:"nullable,in=ADMIN CLIENT"`
}

// UpdateUser lets a user edit their own name and email, and admins edit any
// account including the role. A role field from a non-admin self-update is
// silently dropped.
func UpdateUser(c *fiber.Ctx) error {
	targetID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Utilisateur non trouvé",
		})
	}

	if !middleware.CanMutate(c, uint(targetID)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Accès non autorisé",
		})
	}

	input := new(updateUserInput)
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

	var user models.User
	if err := db.DB.First(&user, uint(targetID)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Utilisateur non trouvé",
		})
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Email != nil {
		var existing models.User
		if db.DB.Where("email = ? AND id <> ?", *input.Email, user.ID).First(&existing).RowsAffected > 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Un utilisateur avec cet email existe déjà",
			})
		}
		updates["email"] = *input.Email
	}
	if input.Role != nil && middleware.UserRole(c) == models.RoleAdmin {
		updates["role"] = *input.Role
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
			log.Printf("User update error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erreur interne du serveur",
			})
		}
	}

	user.Password = ""
	return c.JSON(fiber.Map{
		"message": "Utilisateur mis à jour avec succès",
		"user":    user,
	})
}

// DeleteUser removes an account. Admins cannot delete their own account.
func DeleteUser(c *fiber.Ctx) error {
	targetID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Utilisateur non trouvé",
		})
	}

	if uint(targetID) == middleware.UserID(c) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Vous ne pouvez pas supprimer votre propre compte",
		})
	}

	var user models.User
	if err := db.DB.First(&user, uint(targetID)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Utilisateur non trouvé",
		})
	}

	if err := db.DB.Delete(&user).Error; err != nil {
		log.Printf("User deletion error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Utilisateur supprimé avec succès",
	})
}
