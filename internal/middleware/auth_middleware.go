package middleware

import (
	"strings"

	"study-byte/internal/domain"
	"study-byte/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the locals key under which Protected stores the caller's user ID.
const UserIDKey = "userID"

// Protected requires a valid Bearer access token and stores the authenticated
// user ID in the request locals.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return domain.NewUnauthorizedError("authorization header required")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return domain.NewUnauthorizedError("authorization header must be a Bearer token")
		}

		claims, err := authService.ValidateAccessToken(strings.TrimSpace(parts[1]))
		if err != nil {
			return err
		}

		c.Locals(UserIDKey, claims.UserID)
		return c.Next()
	}
}

// UserID returns the authenticated user ID stored by Protected.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
