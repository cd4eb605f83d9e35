package progressController

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

// MarkChapterComplete records a chapter completion. Storage is write-once
// per (user, course, chapter), but repeating the call is fine for the
// caller: an existing mark answers 200 instead of an error.
func MarkChapterComplete(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedProgress").(*courseValidator.ProgressRequest)

	db := database.Database.Db

	// Check if progress already exists
	var existing models.ProgressMark
	if err := db.Where("user_id = ? AND course_id = ? AND chapter_id = ?",
		userID, reqData.CourseID, reqData.ChapterID).First(&existing).Error; err == nil {
		return middleware.JsonMessage(c, fiber.StatusOK, "Progress already recorded.")
	}

	mark := models.ProgressMark{
		UserID:    userID,
		CourseID:  reqData.CourseID,
		ChapterID: reqData.ChapterID,
	}

	if err := db.Create(&mark).Error; err != nil {
		// Concurrent duplicates land here via the unique index; same
		// outcome for the caller as the existence check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonMessage(c, fiber.StatusOK, "Progress already recorded.")
		}
		log.Printf("Error saving progress: %v", err)
		return middleware.JsonMessage(c, fiber.StatusServiceUnavailable, "Unable to update progress.")
	}

	return middleware.JsonMessage(c, fiber.StatusCreated, "Progress updated.")
}

// UnmarkChapterComplete removes a completion mark so the server stays the
// single source of truth when a user un-checks a chapter. Removing an
// absent mark succeeds; the end state is the same either way.
func UnmarkChapterComplete(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedProgress").(*courseValidator.ProgressRequest)

	result := database.Database.Db.Where("user_id = ? AND course_id = ? AND chapter_id = ?",
		userID, reqData.CourseID, reqData.ChapterID).Delete(&models.ProgressMark{})
	if result.Error != nil {
		log.Printf("Error deleting progress: %v", result.Error)
		return middleware.JsonMessage(c, fiber.StatusServiceUnavailable, "Unable to update progress.")
	}

	return middleware.JsonMessage(c, fiber.StatusOK, "Progress removed.")
}
