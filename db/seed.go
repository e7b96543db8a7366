package db

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/juridx/juridx-api/models"
)

// Seed creates the admin account, the default service catalogue and the
// launch testimonials. Every step is idempotent: existing rows are left
// untouched.
func Seed() {
	seedAdmin()
	seedServices()
	seedTestimonials()
	seedSettings()
	log.Println("✅ Database seeded")
}

func seedAdmin() {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@juridx.com"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	var existing models.User
	if DB.Where("email = ?", adminEmail).First(&existing).RowsAffected > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 12)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Email:    adminEmail,
		Name:     "Abderrahman Adel",
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to create admin user: %v", err)
		return
	}
	log.Printf("✅ Admin user created: %s", admin.Email)
}

func seedServices() {
	services := []models.Service{
		{
			Title:       "Droit des Affaires International",
			Description: "Conseil juridique spécialisé pour les transactions commerciales internationales et la structuration d'entreprises multi-juridictionnelles.",
			Icon:        "Scale",
			Featured:    true,
			Order:       1,
		},
		{
			Title:       "Structuration Juridique",
			Description: "Optimisation de structures juridiques complexes pour maximiser l'efficacité opérationnelle et la conformité réglementaire.",
			Icon:        "Building",
			Featured:    true,
			Order:       2,
		},
		{
			Title:       "Stratégie d'Entreprise",
			Description: "Conseil stratégique pour l'expansion internationale, les fusions-acquisitions et la transformation digitale.",
			Icon:        "TrendingUp",
			Featured:    true,
			Order:       3,
		},
		{
			Title:       "IA & Science des Données",
			Description: "Intégration de solutions d'intelligence artificielle et d'analyse de données dans les processus juridiques et commerciaux.",
			Icon:        "Brain",
			Order:       4,
		},
		{
			Title:       "Relations Internationales",
			Description: "Expertise en négociations internationales, conformité réglementaire et gestion des risques géopolitiques.",
			Icon:        "Globe",
			Order:       5,
		},
		{
			Title:       "Support aux Investisseurs",
			Description: "Accompagnement juridique pour les levées de fonds, due diligence et structuration d'investissements.",
			Icon:        "DollarSign",
			Order:       6,
		},
	}

	for _, service := range services {
		var existing models.Service
		if DB.Where("title = ?", service.Title).First(&existing).RowsAffected == 0 {
			DB.Create(&service)
		}
	}
}

func seedTestimonials() {
	testimonials := []models.Testimonial{
		{
			Name:     "Sarah Mitchell",
			Role:     "CEO",
			Company:  "TechGlobal Solutions",
			Content:  "L'expertise d'Abderrahman en droit international des affaires a été cruciale pour notre expansion européenne. Son approche stratégique et sa connaissance approfondie des réglementations nous ont fait économiser des mois de négociations.",
			Rating:   5,
			Featured: true,
			Approved: true,
		},
		{
			Name:     "Dr. James Chen",
			Role:     "Directeur Juridique",
			Company:  "Innovation Ventures",
			Content:  "La combinaison unique de compétences juridiques et technologiques d'Abderrahman nous a permis de structurer nos investissements en IA de manière optimale. Un conseiller exceptionnel.",
			Rating:   5,
			Featured: true,
			Approved: true,
		},
		{
			Name:     "Maria Rodriguez",
			Role:     "Fondatrice",
			Company:  "EuroTrade Partners",
			Content:  "Grâce aux conseils d'Abderrahman, nous avons pu naviguer avec succès dans les complexités réglementaires du commerce international. Son expertise est inestimable.",
			Rating:   5,
			Featured: true,
			Approved: true,
		},
	}

	for _, testimonial := range testimonials {
		var existing models.Testimonial
		if DB.Where("name = ? AND company = ?", testimonial.Name, testimonial.Company).First(&existing).RowsAffected == 0 {
			DB.Create(&testimonial)
		}
	}
}

func seedSettings() {
	settings := []models.Setting{
		{Key: "site_name", Value: "JuridX", Type: models.SettingString},
		{Key: "contact_email", Value: "contact@juridx.com", Type: models.SettingString},
		{Key: "contact_phone", Value: "+44 (0) 20 7123 4567", Type: models.SettingString},
	}

	for _, setting := range settings {
		var existing models.Setting
		if DB.Where("key = ?", setting.Key).First(&existing).RowsAffected == 0 {
			DB.Create(&setting)
		}
	}
}
