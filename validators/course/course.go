package courseValidator

import (
	"strconv"
	"strings"

	"learninghub/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseDetail validates the ?id= query parameter for the catalog detail
// endpoint and stashes the parsed id in Locals.
func CourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Query("id"))
		if idStr == "" {
			return middleware.JsonMessage(c, fiber.StatusBadRequest, "Course ID is required!")
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonMessage(c, fiber.StatusBadRequest, "Invalid Course ID!")
		}

		c.Locals("courseID", uint(id))
		return c.Next()
	}
}

// EnrollRequest is the validated enroll body passed on via Locals.
type EnrollRequest struct {
	CourseID uint `json:"course_id"`
}

// Enroll validator middleware
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonMessage(c, fiber.StatusBadRequest, "Unable to enroll. Course ID is missing.")
		}

		if reqData.CourseID == 0 {
			return middleware.JsonMessage(c, fiber.StatusBadRequest, "Unable to enroll. Course ID is missing.")
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

// ProgressRequest is the validated progress body passed on via Locals.
type ProgressRequest struct {
	CourseID  uint `json:"course_id"`
	ChapterID uint `json:"chapter_id"`
}

// Progress validator middleware, shared by mark and unmark
func Progress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonMessage(c, fiber.StatusBadRequest, "Unable to update progress. Data is incomplete.")
		}

		if reqData.CourseID == 0 || reqData.ChapterID == 0 {
			return middleware.JsonMessage(c, fiber.StatusBadRequest, "Unable to update progress. Data is incomplete.")
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
