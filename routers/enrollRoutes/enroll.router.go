package enrollRoutes

import (
	enrollControllers "learninghub/controllers/enroll"
	"learninghub/middleware"
	"learninghub/session"
	courseValidators "learninghub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollRoutes sets up the session-gated enrollment routes
func SetupEnrollRoutes(app *fiber.App, sessions *session.Manager) {
	enrollGroup := app.Group("/enroll", middleware.RequireSession(sessions))

	enrollGroup.Post("/", courseValidators.Enroll(), enrollControllers.EnrollInCourse)
	enrollGroup.Get("/my_courses", enrollControllers.GetMyCourses)
}
