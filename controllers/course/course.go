package courseController

import (
	"errors"

	"learninghub/database"
	"learninghub/middleware"
	"learninghub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// courseItem shapes a course row for the wire
func courseItem(course models.Course) fiber.Map {
	return fiber.Map{
		"id":          course.ID,
		"slug":        course.Slug,
		"title":       course.Title,
		"description": course.Description,
		"image_url":   course.ImageURL,
		"badge_class": course.BadgeClass,
		"link":        course.Link,
	}
}

// GetAllCourses lists the catalog. No auth: the catalog is public.
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Order("id asc").Find(&courses).Error; err != nil {
		return middleware.JsonMessage(c, fiber.StatusServiceUnavailable, "Unable to fetch courses.")
	}

	if len(courses) == 0 {
		return middleware.JsonMessage(c, fiber.StatusNotFound, "No courses found.")
	}

	records := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		records = append(records, courseItem(course))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"records": records})
}

// GetCourseDetail returns one course by the validated ?id= parameter.
func GetCourseDetail(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonMessage(c, fiber.StatusNotFound, "Course not found.")
		}
		return middleware.JsonMessage(c, fiber.StatusServiceUnavailable, "Unable to fetch course.")
	}

	return c.Status(fiber.StatusOK).JSON(courseItem(course))
}
