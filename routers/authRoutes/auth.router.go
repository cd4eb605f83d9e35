package authRoutes

import (
	authControllers "learninghub/controllers/auth"
	"learninghub/session"
	authValidators "learninghub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, sessions *session.Manager) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login(sessions))
	authGroup.Post("/logout", authControllers.Logout(sessions))
	authGroup.Get("/check_session", authControllers.CheckSession(sessions))
}
