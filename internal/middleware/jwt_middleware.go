package middleware

import (
	"errors"
	"strings"

	"flowerstore/internal/models"
	"flowerstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

const userLocalsKey = "current_user"

// AuthRequired is a Fiber middleware that gates protected routes. It
// verifies the bearer token, resolves its subject to a user row and rejects
// disabled accounts. The resolved user is stored in the request locals.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Could not validate credentials",
			})
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Could not validate credentials",
			})
		}

		user, err := authService.CurrentUser(sub)
		if err != nil {
			if errors.Is(err, services.ErrInactiveUser) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"message": "Inactive user",
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Could not validate credentials",
			})
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by AuthRequired, or nil
// on unprotected routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalsKey).(*models.User)
	return user
}
