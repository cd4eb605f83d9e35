package authValidator

import (
	"regexp"
	"strings"

	"learninghub/middleware"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// RegisterRequest is the validated register body passed on via Locals.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the validated login body passed on via Locals.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonMessage(c, fiber.StatusBadRequest, "Unable to register user. Data is incomplete.")
		}

		reqData.Username = strings.TrimSpace(reqData.Username)
		reqData.Email = strings.TrimSpace(reqData.Email)

		if reqData.Username == "" || reqData.Email == "" || reqData.Password == "" {
			return middleware.JsonMessage(c, fiber.StatusBadRequest, "Unable to register user. Data is incomplete.")
		}

		if !isValidEmail(reqData.Email) {
			return middleware.JsonMessage(c, fiber.StatusBadRequest, "Unable to register user. Invalid email address.")
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonMessage(c, fiber.StatusBadRequest, "Unable to login. Data is incomplete.")
		}

		reqData.Email = strings.TrimSpace(reqData.Email)

		if reqData.Email == "" || reqData.Password == "" {
			return middleware.JsonMessage(c, fiber.StatusBadRequest, "Unable to login. Data is incomplete.")
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
