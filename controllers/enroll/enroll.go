package enrollController

import (
	"errors"
	"log"

	"learninghub/database"
	"learninghub/middleware"
	"learninghub/models"
	courseValidator "learninghub/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollInCourse creates the write-once (user, course) enrollment. A second
// request for the same pair is a conflict, never a silent success.
func EnrollInCourse(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedEnroll").(*courseValidator.EnrollRequest)

	db := database.Database.Db

	// Check if course exists
	var course models.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonMessage(c, fiber.StatusNotFound, "Course not found.")
	}

	// Check if user is already enrolled
	var existing models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, reqData.CourseID).First(&existing).Error; err == nil {
		return middleware.JsonMessage(c, fiber.StatusConflict, "User already enrolled in this course.")
	}

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: reqData.CourseID,
	}

	if err := db.Create(&enrollment).Error; err != nil {
		// A concurrent duplicate can pass the check above; the composite
		// unique index reports it here as a conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonMessage(c, fiber.StatusConflict, "User already enrolled in this course.")
		}
		log.Printf("Error saving enrollment: %v", err)
		return middleware.JsonMessage(c, fiber.StatusServiceUnavailable, "Unable to enroll.")
	}

	return middleware.JsonMessage(c, fiber.StatusCreated, "Enrolled successfully.")
}

// GetMyCourses lists the caller's enrolled courses, most recent enrollment
// first, each with its completed-chapter count. No enrollments is an empty
// list, not an error.
func GetMyCourses(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ?", userID).Preload("Course").Order("enrolled_at DESC").Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.JsonMessage(c, fiber.StatusServiceUnavailable, "Unable to fetch courses.")
	}

	records := make([]fiber.Map, 0, len(enrollments))
	for _, e := range enrollments {
		var completed int64
		if err := db.Model(&models.ProgressMark{}).Where("user_id = ? AND course_id = ?", userID, e.CourseID).Count(&completed).Error; err != nil {
			log.Printf("Error counting progress for course %d: %v", e.CourseID, err)
		}

		records = append(records, fiber.Map{
			"id":                 e.Course.ID,
			"slug":               e.Course.Slug,
			"title":              e.Course.Title,
			"description":        e.Course.Description,
			"image_url":          e.Course.ImageURL,
			"badge_class":        e.Course.BadgeClass,
			"link":               e.Course.Link,
			"enrolled_at":        e.EnrolledAt,
			"completed_chapters": completed,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"records": records})
}
