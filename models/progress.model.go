package models

import (
	"time"
)

// ProgressMark records that a user completed one chapter of a course.
// Write-once per (user, course, chapter); the unique index is the backstop
// for the check-then-insert race in the progress handler. No gorm.Model
// here: unmarking deletes the row outright, and a soft-deleted row would
// keep blocking the unique index.
type ProgressMark struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	UserID      uint      `json:"user_id" gorm:"uniqueIndex:idx_user_course_chapter;not null"`
	CourseID    uint      `json:"course_id" gorm:"uniqueIndex:idx_user_course_chapter;not null"`
	ChapterID   uint      `json:"chapter_id" gorm:"uniqueIndex:idx_user_course_chapter;not null"`
	CompletedAt time.Time `json:"completed_at" gorm:"autoCreateTime"`
}
