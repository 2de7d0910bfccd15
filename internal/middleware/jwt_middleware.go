package middleware

import (
	"log"
	"strings"

	"kbbq/internal/models"

	"github.com/gofiber/fiber/v2"
)

const claimsKey = "claims"

// TokenVerifier turns a bearer token into claims.
type TokenVerifier interface {
	Verify(token string) (*models.Claims, error)
}

// AuthRequired is a Fiber middleware to check for a valid bearer token.
func AuthRequired(tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not authenticated",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			log.Printf("[auth] token rejected: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token",
			})
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// Require lets the request through only when capability holds for the
// claims stored by AuthRequired.
func Require(capability func(*models.Claims) bool, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFrom(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not authenticated",
			})
		}
		if !capability(claims) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": message,
			})
		}
		return c.Next()
	}
}

// AdminOnly gates a route group on the admin role.
func AdminOnly() fiber.Handler {
	return Require((*models.Claims).IsAdmin, "Admin privileges required")
}

// ClaimsFrom returns the claims stored by AuthRequired, or nil.
func ClaimsFrom(c *fiber.Ctx) *models.Claims {
	claims, _ := c.Locals(claimsKey).(*models.Claims)
	return claims
}
