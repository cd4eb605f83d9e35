package middleware

import (
	"learninghub/session"

	"github.com/gofiber/fiber/v2"
)

// RequireSession resolves the session cookie and rejects the request with
// 401 when no live session exists. On success the user identity is stored
// in the request context for the handler.
func RequireSession(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := sessions.Resolve(c.Cookies(sessions.CookieName()))
		if s == nil {
			return JsonMessage(c, fiber.StatusUnauthorized, "Unauthorized. Please login first.")
		}

		c.Locals("userId", s.UserID)
		c.Locals("username", s.Username)
		return c.Next()
	}
}
