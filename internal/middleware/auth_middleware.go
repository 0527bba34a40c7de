package middleware

import (
	"strings"

	"planning-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Auth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing authorization token"})
	}

	tokenString := strings.Replace(authHeader, "Bearer ", "", 1)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(config.JWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	// Stash the claims so handlers can scope queries without another lookup.
	claims := token.Claims.(jwt.MapClaims)
	c.Locals("user_id", claims["user_id"])
	c.Locals("username", claims["username"])
	c.Locals("role", claims["role"])
	c.Locals("organization_id", claims["organization_id"])

	return c.Next()
}

// UserID reads the authenticated user id set by Auth.
func UserID(c *fiber.Ctx) uint {
	if v, ok := c.Locals("user_id").(float64); ok {
		return uint(v)
	}
	return 0
}

// OrganizationID reads the authenticated user's primary organization.
func OrganizationID(c *fiber.Ctx) uint {
	if v, ok := c.Locals("organization_id").(float64); ok {
		return uint(v)
	}
	return 0
}
