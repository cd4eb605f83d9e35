package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Slug        string `json:"slug" gorm:"unique;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	BadgeClass  string `json:"badge_class"`
	Link        string `json:"link"`
}
