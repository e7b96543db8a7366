package middleware

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/juridx/juridx-api/models"
)

// AuthCookieName is the HTTP-only cookie carrying the session token.
const AuthCookieName = "auth-token"

// Secret returns the JWT signing secret.
func Secret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return []byte(secret)
}

// Protected requires a valid token, found in the auth cookie or the
// Authorization header. On success userID, email and role are set in locals.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   Secret(),
		TokenLookup:  "cookie:" + AuthCookieName + ",header:Authorization",
		AuthScheme:   "Bearer",
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Authentification requise",
				})
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Authentification requise",
				})
			}
			if err := setIdentityLocals(c, claims); err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Authentification requise",
				})
			}
			return c.Next()
		},
	})
}

// OptionalAuth extracts an identity when a valid token is present and
// continues silently otherwise. Public endpoints that want to attach the
// caller (consultation requests) use this.
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(AuthCookieName)
		if raw == "" {
			header := c.Get("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				raw = strings.TrimPrefix(header, "Bearer ")
			}
		}
		if raw == "" {
			return c.Next()
		}

		token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
			return Secret(), nil
		})
		if err != nil || !token.Valid {
			return c.Next()
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Next()
		}
		// Best effort: a malformed claim set is the same as no identity.
		_ = setIdentityLocals(c, claims)
		return c.Next()
	}
}

// RequireAdmin rejects callers whose role is not ADMIN. Must run after
// Protected.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(models.Role)
		if !ok || role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Accès non autorisé",
			})
		}
		return c.Next()
	}
}

// UserID returns the authenticated user's id, or 0 when no identity is set.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}

// UserRole returns the authenticated user's role, or "" when no identity is
// set.
func UserRole(c *fiber.Ctx) models.Role {
	role, _ := c.Locals("role").(models.Role)
	return role
}

// IsAuthenticated reports whether the request carries a valid identity.
func IsAuthenticated(c *fiber.Ctx) bool {
	return UserID(c) != 0
}

// CanMutate is the combined role-and-ownership check: admins may mutate
// anything, other callers only resources they own.
func CanMutate(c *fiber.Ctx, ownerID uint) bool {
	return UserRole(c) == models.RoleAdmin || (ownerID != 0 && UserID(c) == ownerID)
}

func setIdentityLocals(c *fiber.Ctx, claims jwt.MapClaims) error {
	idVal, ok := claims["id"].(float64)
	if !ok {
		return fiber.ErrUnauthorized
	}
	email, _ := claims["email"].(string)
	roleStr, _ := claims["role"].(string)

	c.Locals("userID", uint(idVal))
	c.Locals("email", email)
	c.Locals("role", models.Role(roleStr))
	return nil
}

func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Authentification requise",
	})
}
