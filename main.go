package main

import (
	"log"
	"time"

	"learninghub/config"
	"learninghub/database"
	authRoutes "learninghub/routers/authRoutes"
	courseRoutes "learninghub/routers/courseRoutes"
	enrollRoutes "learninghub/routers/enrollRoutes"
	progressRoutes "learninghub/routers/progressRoutes"
	"learninghub/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// setupApp wires middleware and routes onto a fresh Fiber app. Split out of
// main so tests can drive the full route table through app.Test.
func setupApp(sessions *session.Manager) *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, sessions)
	courseRoutes.SetupCourseRoutes(app)
	enrollRoutes.SetupEnrollRoutes(app, sessions)
	progressRoutes.SetupProgressRoutes(app, sessions)

	return app
}

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Pick the session backing store: persistent rows in production,
	// in-process map otherwise.
	var store session.Store
	if config.AppConfig.SessionStore == "db" {
		store = session.NewGormStore(database.Database.Db)
	} else {
		store = session.NewMemoryStore()
	}

	sessions := session.NewManager(
		store,
		config.AppConfig.SessionCookie,
		time.Duration(config.AppConfig.SessionTTLHours)*time.Hour,
	)
	sweeper := sessions.StartSweeper()
	defer sweeper.Stop()

	app := setupApp(sessions)

	// Serve chapter content files, addressed by course slug + filename
	app.Static("/content", config.AppConfig.ContentDir)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
