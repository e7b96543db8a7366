package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/db"
	"github.com/juridx/juridx-api/middleware"
	"github.com/juridx/juridx-api/models"
	"github.com/juridx/juridx-api/utils"
	"github.com/juridx/juridx-api/validate"
)

type createConsultationInput struct {
	FirstName     string `json:"firstName" validate:"required,min=1"`
	LastName      string `json:"lastName" validate:"required,min=1"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	Company       string `json:"company"`
	ServiceID     *uint  `json:"serviceId"`
	Description   string `json:"description" validate:"required,min=10"`
	PreferredDate string `json:"preferredDate" validate:"nullable,date"`
}

// CreateConsultation handles the public consultation request form. When the
// request carries a valid token the caller is attached as client. No email
// goes out here; only the contact form notifies.
func CreateConsultation(c *fiber.Ctx) error {
	input := new(createConsultationInput)
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

	consultation := models.Consultation{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Phone:         input.Phone,
		Company:       input.Company,
		ServiceID:     input.ServiceID,
		Description:   input.Description,
		PreferredDate: parseDate(input.PreferredDate),
	}
	if id := middleware.UserID(c); id != 0 {
		consultation.ClientID = &id
	}

	if err := db.DB.Create(&consultation).Error; err != nil {
		log.Printf("Consultation creation error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	db.DB.Preload("Service").Preload("Client").First(&consultation, consultation.ID)
	consultation.Client = stripPassword(consultation.Client)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Demande de consultation créée avec succès",
		"consultation": consultation,
	})
}

// GetConsultations lists consultations: everything for admins (with an
// optional status filter), only the caller's own for clients.
func GetConsultations(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)

	query := db.DB.Model(&models.Consultation{})
	if middleware.UserRole(c) == models.RoleAdmin {
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
	} else {
		query = query.Where("client_id = ?", middleware.UserID(c))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	var consultations []models.Consultation
	err := query.Preload("Service").Preload("Client").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&consultations).Error
	if err != nil {
		log.Printf("Consultations fetch error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}
	for i := range consultations {
		consultations[i].Client = stripPassword(consultations[i].Client)
	}

	return c.JSON(fiber.Map{
		"consultations": consultations,
		"pagination":    utils.NewPagination(page, limit, total),
	})
}

// GetConsultation returns one consultation, visible to admins and to the
// owning client.
func GetConsultation(c *fiber.Ctx) error {
	var consultation models.Consultation
	err := db.DB.Preload("Service").Preload("Client").
		First(&consultation, c.Params("id")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Consultation non trouvée",
		})
	}

	ownerID := uint(0)
	if consultation.ClientID != nil {
		ownerID = *consultation.ClientID
	}
	if !middleware.CanMutate(c, ownerID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Accès non autorisé",
		})
	}

	consultation.Client = stripPassword(consultation.Client)
	return c.JSON(fiber.Map{"consultation": consultation})
}

type updateConsultationInput struct {
	FirstName         *string `json:"firstName" validate:"nullable,min=1"`
	LastName          *string `json:"lastName" validate:"nullable,min=1"`
	Email             *string `json:"email" validate:"nullable,email"`
	Phone             *string `json:"phone"`
	Company           *string `json:"company"`
	ServiceID         *uint   `json:"serviceId"`
	Description       *string `json:"description" validate:"nullable,min=10"`
	PreferredDate     *string `json:"preferredDate" validate:"nullable,date"`
	Status            *string `json:"status" validate:"nullable,in=pending scheduled in_progress completed cancelled rescheduled follow_up"`
	Priority          *string `json:"priority" validate:"nullable,in=low medium high urgent"`
	Notes             *string `json:"notes"`
	ScheduledDate     *string `json:"scheduledDate" validate:"nullable,date"`
	EstimatedDuration *int    `json:"estimatedDuration" validate:"nullable,min=1"`
	FollowUpDate      *string `json:"followUpDate" validate:"nullable,date"`
}

// UpdateConsultation applies a partial admin update. Status changes go
// through the transition table; every other field is free-form.
func UpdateConsultation(c *fiber.Ctx) error {
	input := new(updateConsultationInput)
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

	var consultation models.Consultation
	if err := db.DB.First(&consultation, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Consultation non trouvée",
		})
	}

	updates := map[string]interface{}{}
	if input.FirstName != nil {
		updates["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Company != nil {
		updates["company"] = *input.Company
	}
	if input.ServiceID != nil {
		updates["service_id"] = *input.ServiceID
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.PreferredDate != nil {
		updates["preferred_date"] = parseDate(*input.PreferredDate)
	}
	if input.Priority != nil {
		updates["priority"] = *input.Priority
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}
	if input.ScheduledDate != nil {
		updates["scheduled_date"] = parseDate(*input.ScheduledDate)
	}
	if input.EstimatedDuration != nil {
		updates["estimated_duration"] = *input.EstimatedDuration
	}
	if input.FollowUpDate != nil {
		updates["follow_up_date"] = parseDate(*input.FollowUpDate)
	}
	if input.Status != nil {
		newStatus := models.ConsultationStatus(*input.Status)
		if !models.IsValidTransition(consultation.Status, newStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Données invalides",
				"details": []validate.FieldError{{
					Field:   "status",
					Message: "Transition de statut invalide de " + string(consultation.Status) + " vers " + string(newStatus),
				}},
			})
		}
		updates["status"] = newStatus
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&consultation).Updates(updates).Error; err != nil {
			log.Printf("Consultation update error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erreur interne du serveur",
			})
		}
	}

	db.DB.Preload("Service").Preload("Client").First(&consultation, consultation.ID)
	consultation.Client = stripPassword(consultation.Client)

	return c.JSON(fiber.Map{
		"message":      "Consultation mise à jour avec succès",
		"consultation": consultation,
	})
}

type scheduleConsultationInput struct {
	ScheduledDate     string `json:"scheduledDate" validate:"required,date"`
	EstimatedDuration int    `json:"estimatedDuration" validate:"nullable,min=1"`
	Notes             string `json:"notes"`
}

// ScheduleConsultation books a consultation: status moves to scheduled and
// the scheduling fields land in the same update. The client is notified by
// email when SMTP is configured.
func ScheduleConsultation(c *fiber.Ctx) error {
	input := new(scheduleConsultationInput)
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

	var consultation models.Consultation
	if err := db.DB.First(&consultation, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Consultation non trouvée",
		})
	}

	if !models.IsValidTransition(consultation.Status, models.StatusScheduled) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Données invalides",
			"details": []validate.FieldError{{
				Field:   "status",
				Message: "Transition de statut invalide de " + string(consultation.Status) + " vers scheduled",
			}},
		})
	}

	updates := map[string]interface{}{
		"status":         models.StatusScheduled,
		"scheduled_date": parseDate(input.ScheduledDate),
	}
	if input.EstimatedDuration > 0 {
		updates["estimated_duration"] = input.EstimatedDuration
	}
	if input.Notes != "" {
		updates["notes"] = input.Notes
	}

	if err := db.DB.Model(&consultation).Updates(updates).Error; err != nil {
		log.Printf("Consultation scheduling error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	db.DB.Preload("Service").Preload("Client").First(&consultation, consultation.ID)
	consultation.Client = stripPassword(consultation.Client)

	response := fiber.Map{
		"message":      "Consultation programmée avec succès",
		"consultation": consultation,
	}
	if !utils.IsMailConfigured() {
		response["warning"] = "Email service not configured"
	} else if err := utils.SendConsultationScheduled(&consultation); err != nil {
		log.Printf("Failed to send scheduling email for consultation %d: %v", consultation.ID, err)
		response["warning"] = "Failed to send email notification"
	}

	return c.JSON(response)
}

type batchStatusInput struct {
	IDs    []uint `json:"ids" validate:"required"`
	Status string `json:"status" validate:"required,in=pending scheduled in_progress completed cancelled rescheduled follow_up"`
}

type batchStatusResult struct {
	ID    uint   `json:"id"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// BatchUpdateStatus changes the status of several consultations and reports
// the outcome per record. There is no transactional atomicity: some records
// may change while others fail.
func BatchUpdateStatus(c *fiber.Ctx) error {
	input := new(batchStatusInput)
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

	newStatus := models.ConsultationStatus(input.Status)
	results := make([]batchStatusResult, 0, len(input.IDs))
	for _, id := range input.IDs {
		var consultation models.Consultation
		if err := db.DB.First(&consultation, id).Error; err != nil {
			results = append(results, batchStatusResult{ID: id, Error: "Consultation non trouvée"})
			continue
		}
		if err := consultation.UpdateStatus(db.DB, newStatus); err != nil {
			results = append(results, batchStatusResult{ID: id, Error: err.Error()})
			continue
		}
		results = append(results, batchStatusResult{ID: id, OK: true})
	}

	return c.JSON(fiber.Map{"results": results})
}

// DeleteConsultation hard-deletes a consultation.
func DeleteConsultation(c *fiber.Ctx) error {
	var consultation models.Consultation
	if err := db.DB.First(&consultation, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Consultation non trouvée",
		})
	}

	if err := db.DB.Delete(&consultation).Error; err != nil {
		log.Printf("Consultation deletion error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Consultation supprimée avec succès",
	})
}

func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func stripPassword(u *models.User) *models.User {
	if u != nil {
		u.Password = ""
	}
	return u
}
