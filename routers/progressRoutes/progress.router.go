package progressRoutes

import (
	progressControllers "learninghub/controllers/progress"
	"learninghub/middleware"
	"learninghub/session"
	courseValidators "learninghub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes sets up the session-gated progress routes
func SetupProgressRoutes(app *fiber.App, sessions *session.Manager) {
	progressGroup := app.Group("/progress", middleware.RequireSession(sessions))

	progressGroup.Post("/", courseValidators.Progress(), progressControllers.MarkChapterComplete)
	progressGroup.Delete("/", courseValidators.Progress(), progressControllers.UnmarkChapterComplete)
}
