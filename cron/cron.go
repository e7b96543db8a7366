package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/juridx/juridx-api/db"
	"github.com/juridx/juridx-api/models"
	"github.com/juridx/juridx-api/utils"
)

// StartCronJobs initializes the scheduler for consultation reminders and
// follow-up notices.
func StartCronJobs() {
	c := cron.New()

	// Every minute, catch scheduled consultations starting in about an hour.
	if _, err := c.AddFunc("* * * * *", sendConsultationReminders); err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	// Every morning, surface follow-ups due today.
	if _, err := c.AddFunc("0 8 * * *", sendFollowUpNotices); err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started for consultation reminders")
}

// sendConsultationReminders emails clients whose scheduled consultation
// starts within the next hour.
func sendConsultationReminders() {
	if !utils.IsMailConfigured() {
		return
	}

	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	var consultations []models.Consultation
	err := db.DB.Preload("Service").
		Where("status = ? AND scheduled_date BETWEEN ? AND ?", models.StatusScheduled, startWindow, endWindow).
		Find(&consultations).Error
	if err != nil {
		log.Printf("Error fetching consultations for reminders: %v", err)
		return
	}

	for _, consultation := range consultations {
		if err := utils.SendConsultationReminder(&consultation); err != nil {
			log.Printf("Failed to send reminder for consultation %d: %v", consultation.ID, err)
			continue
		}
		log.Printf("Sent reminder for consultation %d to %s", consultation.ID, consultation.Email)
	}
}

// sendFollowUpNotices alerts the firm inbox about follow-ups due today.
func sendFollowUpNotices() {
	if !utils.IsMailConfigured() {
		return
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var consultations []models.Consultation
	err := db.DB.
		Where("status = ? AND follow_up_date >= ? AND follow_up_date < ?", models.StatusFollowUp, dayStart, dayEnd).
		Find(&consultations).Error
	if err != nil {
		log.Printf("Error fetching consultations for follow-up notices: %v", err)
		return
	}

	for _, consultation := range consultations {
		if err := utils.SendFollowUpNotice(&consultation); err != nil {
			log.Printf("Failed to send follow-up notice for consultation %d: %v", consultation.ID, err)
			continue
		}
		log.Printf("Sent follow-up notice for consultation %d", consultation.ID)
	}
}
