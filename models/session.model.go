package models

import "time"

// Session is the server-side record behind the opaque cookie token.
type Session struct {
	Token     string    `json:"-" gorm:"primaryKey;size:64"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"-" gorm:"index;not null"`
	CreatedAt time.Time `json:"-"`
}
