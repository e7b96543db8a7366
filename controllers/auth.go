package controllers

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/juridx/juridx-api/db"
	"github.com/juridx/juridx-api/middleware"
	"github.com/juridx/juridx-api/models"
	"github.com/juridx/juridx-api/validate"
)

const tokenTTL = 7 * 24 * time.Hour

type registerInput struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register creates a CLIENT account. The role in the payload, if any, is
// ignored.
func Register(c *fiber.Ctx) error {
	input := new(registerInput)
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

	var existing models.User
	if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Un utilisateur avec cet email existe déjà",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), 12)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     models.RoleClient,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		log.Printf("User creation error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}

	token, err := issueToken(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}
	setAuthCookie(c, token)

	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Compte créé avec succès",
		"user":    user,
		"token":   token,
	})
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and sets the auth cookie.
func Login(c *fiber.Ctx) error {
	input := new(loginInput)
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
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Identifiants invalides",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Identifiants invalides",
		})
	}

	token, err := issueToken(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur interne du serveur",
		})
	}
	setAuthCookie(c, token)

	user.Password = ""
	return c.JSON(fiber.Map{
		"message": "Connexion réussie",
		"user":    user,
		"token":   token,
	})
}

// Me returns the authenticated user's profile.
func Me(c *fiber.Ctx) error {
	var user models.User
	if err := db.DB.First(&user, middleware.UserID(c)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Utilisateur non trouvé",
		})
	}
	user.Password = ""
	return c.JSON(fiber.Map{"user": user})
}

// Logout clears the auth cookie. The token itself stays valid until expiry
// since there is no server-side session store.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   isProduction(),
	})
	return c.JSON(fiber.Map{
		"message": "Déconnexion réussie",
	})
}

func issueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(middleware.Secret())
}

func setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Expires:  time.Now().Add(tokenTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   isProduction(),
	})
}

func isProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}
