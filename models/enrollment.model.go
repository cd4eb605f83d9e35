package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment is write-once: one row per (user, course), never updated or
// deleted. The composite unique index turns a concurrent duplicate enroll
// into a detectable conflict instead of a second row.
type Enrollment struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID   uint      `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	EnrolledAt time.Time `json:"enrolled_at" gorm:"autoCreateTime"`
	User       User      `json:"-" gorm:"foreignKey:UserID"`
	Course     Course    `json:"-" gorm:"foreignKey:CourseID"`
}
