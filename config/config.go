package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port       string
	BcryptCost int

	DBDriver   string // sqlite, postgres or mysql
	DBName     string
	DBHost     string
	DBUser     string
	DBPassword string
	DBPort     string

	SessionCookie   string
	SessionStore    string // memory or db
	SessionTTLHours int

	ContentDir string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:       getEnv("PORT", "3000"),
		BcryptCost: getEnvInt("BCRYPT_COST", 10),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBName:     getEnv("DB_NAME", "learning_hub.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "learninghub_user"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBPort:     getEnv("DB_PORT", "5432"),

		SessionCookie:   getEnv("SESSION_COOKIE", "learninghub_session"),
		SessionStore:    getEnv("SESSION_STORE", "memory"),
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 24),

		ContentDir: getEnv("CONTENT_DIR", "./content"),
	}

	if AppConfig.DBDriver == "sqlite" {
		log.Println("Warning: Using the embedded sqlite database. Set DB_DRIVER for production.")
	}
	if AppConfig.SessionStore == "memory" {
		log.Println("Warning: Sessions are held in memory and will not survive a restart.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
