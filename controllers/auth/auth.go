package authController

import (
	"errors"
	"log"
	"time"

	"learninghub/config"
	"learninghub/database"
	"learninghub/middleware"
	"learninghub/models"
	"learninghub/session"
	authValidator "learninghub/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// sanitizer strips markup from user-supplied identity fields before storage
var sanitizer = bluemonday.StrictPolicy()

func Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRegister").(*authValidator.RegisterRequest)

	db := database.Database.Db

	username := sanitizer.Sanitize(reqData.Username)
	email := sanitizer.Sanitize(reqData.Email)

	// Check if username or email already exists
	var existing models.User
	if err := db.Where("email = ? OR username = ?", email, username).First(&existing).Error; err == nil {
		return middleware.JsonMessage(c, fiber.StatusConflict, "Username or Email already exists.")
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.BcryptCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonMessage(c, fiber.StatusServiceUnavailable, "Unable to register user.")
	}

	newUser := models.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		// Two concurrent registrations can both pass the existence check;
		// the unique columns turn the loser into a conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonMessage(c, fiber.StatusConflict, "Username or Email already exists.")
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonMessage(c, fiber.StatusServiceUnavailable, "Unable to register user.")
	}

	return middleware.JsonMessage(c, fiber.StatusCreated, "User was registered.")
}

// Login authenticates by email and password and opens a session. Unknown
// email and wrong password produce the identical response so the endpoint
// cannot be used to enumerate accounts.
func Login(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := c.Locals("validatedLogin").(*authValidator.LoginRequest)

		var user models.User
		if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
			return middleware.JsonMessage(c, fiber.StatusUnauthorized, "Invalid email or password.")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
			return middleware.JsonMessage(c, fiber.StatusUnauthorized, "Invalid email or password.")
		}

		token, err := sessions.Create(user.ID, user.Username)
		if err != nil {
			log.Printf("Error creating session: %v", err)
			return middleware.JsonMessage(c, fiber.StatusServiceUnavailable, "Unable to login.")
		}

		c.Cookie(&fiber.Cookie{
			Name:     sessions.CookieName(),
			Value:    token,
			Expires:  time.Now().Add(sessions.TTL()),
			HTTPOnly: true,
			SameSite: "Lax",
		})

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Login successful.",
			"user": fiber.Map{
				"id":       user.ID,
				"username": user.Username,
				"email":    user.Email,
			},
		})
	}
}

// Logout destroys the caller's session. Logging out without one is fine.
func Logout(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(sessions.CookieName())
		if err := sessions.Destroy(token); err != nil {
			log.Printf("Error destroying session: %v", err)
		}

		c.Cookie(&fiber.Cookie{
			Name:     sessions.CookieName(),
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})

		return middleware.JsonMessage(c, fiber.StatusOK, "Logged out successfully.")
	}
}

// CheckSession reports whether the caller holds a live session. Always 200;
// a missing or expired session is a normal is_logged_in=false result.
func CheckSession(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := sessions.Resolve(c.Cookies(sessions.CookieName()))
		if s == nil {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"is_logged_in": false,
				"user":         nil,
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"is_logged_in": true,
			"user": fiber.Map{
				"id":       s.UserID,
				"username": s.Username,
			},
		})
	}
}
