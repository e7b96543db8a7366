package db

import (
	"log"

	"github.com/juridx/juridx-api/models"
)

// Migrate runs AutoMigrate for every entity.
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Testimonial{},
		&models.Contact{},
		&models.Consultation{},
		&models.Newsletter{},
		&models.BlogPost{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	log.Println("✅ Database migrated successfully!")
}
