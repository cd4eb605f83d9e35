package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// JsonMessage writes the standard {"message": ...} body every endpoint uses
// for plain success and error responses.
func JsonMessage(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"message": message,
	})
}
