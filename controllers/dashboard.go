package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/juridx/juridx-api/db"
	"github.com/juridx/juridx-api/models"
	"github.com/juridx/juridx-api/redis"
)

const dashboardCacheKey = "dashboard:overview"
const dashboardCacheTTL = 60 * time.Second

type dashboardStatistics struct {
	Contacts struct {
		Total   int64 `json:"total"`
		Pending int64 `json:"pending"`
	} `json:"contacts"`
	Consultations struct {
		Total   int64 `json:"total"`
		Pending int64 `json:"pending"`
	} `json:"consultations"`
	Users struct {
		Total int64 `json:"total"`
	} `json:"users"`
	Testimonials struct {
		Total   int64 `json:"total"`
		Pending int64 `json:"pending"`
	} `json:"testimonials"`
	Newsletter struct {
		Subscribers int64 `json:"subscribers"`
	} `json:"newsletter"`
	Blog struct {
		Total     int64 `json:"total"`
		Published int64 `json:"published"`
	} `json:"blog"`
}

type monthlyContactStat struct {
	Month    string `json:"month"`
	Contacts int64  `json:"contacts"`
}

type dashboardOverview struct {
	Statistics          dashboardStatistics   `json:"statistics"`
	RecentContacts      []models.Contact      `json:"recentContacts"`
	RecentConsultations []models.Consultation `json:"recentConsultations"`
	MonthlyContacts     []monthlyContactStat  `json:"monthlyContacts"`
}

// GetDashboard aggregates the back-office overview: entity counts, the five
// most recent contacts and consultations, and six months of contact volume.
// The result is cached for a minute when Redis is configured.
func GetDashboard(c *fiber.Ctx) error {
	if cached := redis.Get(dashboardCacheKey); cached != "" {
		var overview dashboardOverview
		if err := json.Unmarshal([]byte(cached), &overview); err == nil {
			return c.JSON(overview)
		}
	}

	var overview dashboardOverview
	stats := &overview.Statistics

	db.DB.Model(&models.Contact{}).Count(&stats.Contacts.Total)
	db.DB.Model(&models.Contact{}).Where("status = ?", models.ContactPending).Count(&stats.Contacts.Pending)
	db.DB.Model(&models.Consultation{}).Count(&stats.Consultations.Total)
	db.DB.Model(&models.Consultation{}).Where("status = ?", models.StatusPending).Count(&stats.Consultations.Pending)
	db.DB.Model(&models.User{}).Count(&stats.Users.Total)
	db.DB.Model(&models.Testimonial{}).Count(&stats.Testimonials.Total)
	db.DB.Model(&models.Testimonial{}).Where("approved = ?", false).Count(&stats.Testimonials.Pending)
	db.DB.Model(&models.Newsletter{}).Where("active = ?", true).Count(&stats.Newsletter.Subscribers)
	db.DB.Model(&models.BlogPost{}).Count(&stats.Blog.Total)
	db.DB.Model(&models.BlogPost{}).Where("published = ?", true).Count(&stats.Blog.Published)

	if err := db.DB.Order("created_at DESC").Limit(5).Find(&overview.RecentContacts).Error; err != nil {
		log.Printf("Dashboard recent contacts error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	err := db.DB.Preload("Service").Preload("Client").
		Order("created_at DESC").Limit(5).
		Find(&overview.RecentConsultations).Error
	if err != nil {
		log.Printf("Dashboard recent consultations error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}
	for i := range overview.RecentConsultations {
		overview.RecentConsultations[i].Client = stripPassword(overview.RecentConsultations[i].Client)
	}

	overview.MonthlyContacts = monthlyContactCounts()

	if raw, err := json.Marshal(overview); err == nil {
		redis.Set(dashboardCacheKey, string(raw), dashboardCacheTTL)
	}

	return c.JSON(overview)
}

// monthlyContactCounts bins contact creation dates into the last six
// calendar months, oldest first.
func monthlyContactCounts() []monthlyContactStat {
	now := time.Now()
	stats := make([]monthlyContactStat, 0, 6)

	for i := 5; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		var count int64
		db.DB.Model(&models.Contact{}).
			Where("created_at >= ? AND created_at < ?", monthStart, monthEnd).
			Count(&count)

		stats = append(stats, monthlyContactStat{
			Month:    fmt.Sprintf("%04d-%02d", monthStart.Year(), int(monthStart.Month())),
			Contacts: count,
		})
	}

	return stats
}
