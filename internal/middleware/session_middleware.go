package middleware

import (
	"strings"

	"flicks/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Session resolves the Authorization header into a request-scoped session.
// A missing header, a malformed header, an invalid or expired token, or a
// vanished user all leave the request anonymous; this middleware never
// rejects a request. Operations that require authentication enforce it
// themselves.
func Session(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader != "" {
			// Expected format: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				if session := authService.Authenticate(parts[1]); session != nil {
					c.SetUserContext(services.WithSession(c.UserContext(), session))
				}
			}
		}
		return c.Next()
	}
}
