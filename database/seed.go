package database

import (
	"log"

	"learninghub/models"

	"gorm.io/gorm"
)

// seedCourses loads the course catalog on first run. Insertion order matters:
// course IDs are referenced by enrollments and by the static content pages.
func seedCourses(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		log.Printf("Error counting courses: %v", err)
		return
	}
	if count > 0 {
		return
	}

	courses := []models.Course{
		{
			Slug:        "html",
			Title:       "HTML Front end",
			Description: "Create the frame for web programming using HTML as the base",
			ImageURL:    "https://placehold.co/600x400/8b5cf6/ffffff?text=HTML",
			BadgeClass:  "badge-violet",
			Link:        "../html/course/html.html",
		},
		{
			Slug:        "javascript",
			Title:       "Javascript",
			Description: "Utilize the javascript functionality to load logical function into the design of the web",
			ImageURL:    "https://placehold.co/600x400/facc15/000000?text=JavaScript",
			BadgeClass:  "badge-yellow",
			Link:        "../html/course/javascript.html",
		},
		{
			Slug:        "css",
			Title:       "CSS layout",
			Description: "Interactively customize the web design using CSS on your own",
			ImageURL:    "https://placehold.co/600x400/22c55e/ffffff?text=CSS",
			BadgeClass:  "badge-green",
			Link:        "../html/course/css.html",
		},
		{
			Slug:        "cp",
			Title:       "Competitive Programming",
			Description: "Master algorithms and data structures to excel in programming contests.",
			ImageURL:    "https://placehold.co/600x400/636f1/ffffff?text=Algorithms",
			BadgeClass:  "badge-indigo",
			Link:        "../html/course/cp.html",
		},
		{
			Slug:        "quantum",
			Title:       "Intro to Quantum Computing",
			Description: "Explore the fascinating world of quantum mechanics and its computational power.",
			ImageURL:    "https://placehold.co/600x400/ec4899/ffffff?text=Quantum",
			BadgeClass:  "badge-pink",
			Link:        "../html/course/quantum.html",
		},
		{
			Slug:        "uiux",
			Title:       "UI/UX Design Fundamentals",
			Description: "Create beautiful and intuitive user interfaces that users will love.",
			ImageURL:    "https://placehold.co/600x400/f97316/ffffff?text=UI/UX",
			BadgeClass:  "badge-orange",
			Link:        "../html/course/uiux.html",
		},
		{
			Slug:        "datascience",
			Title:       "Data Science with Python",
			Description: "Analyze data, create visualizations, and build predictive models.",
			ImageURL:    "https://placehold.co/600x400/0ea5e9/ffffff?text=Data",
			BadgeClass:  "badge-sky",
			Link:        "../html/course/datascience.html",
		},
	}

	if err := db.Create(&courses).Error; err != nil {
		log.Printf("Error seeding courses: %v", err)
		return
	}

	log.Printf("Seeded %d courses.", len(courses))
}
