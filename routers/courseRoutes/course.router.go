package courseRoutes

import (
	courseControllers "learninghub/controllers/course"
	courseValidators "learninghub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public course catalog routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", courseControllers.GetAllCourses)
	courseGroup.Get("/detail", courseValidators.CourseDetail(), courseControllers.GetCourseDetail)
}
