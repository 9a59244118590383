package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	SaltRound int

	AccessTokenSecret  string
	RefreshTokenSecret string

	FrontendURL string
	BaseURL     string // public base URL used to build upload links
	UploadDir   string

	EmailSender   string
	EmailPassword string // SMTP Password

	UserSyncURL string // optional external HR endpoint for new accounts
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
		Port:      getEnv("PORT", "3001"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		AccessTokenSecret:  getEnv("ACCESS_TOKEN_SECRET", "defaultSecret"),
		RefreshTokenSecret: getEnv("REFRESH_TOKEN_SECRET", "defaultSecret"),

		FrontendURL: getEnv("FRONTEND_URL", "*"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3001"),
		UploadDir:   getEnv("UPLOAD_DIR", "./public/uploads"),

		EmailSender:   getEnv("EMAIL_SENDER", ""),
		EmailPassword: getEnv("EMAIL_PASSWORD", ""),

		UserSyncURL: getEnv("USER_SYNC_URL", ""),
	}

	// Validate critical configuration
	if AppConfig.AccessTokenSecret == "defaultSecret" {
		log.Println("Warning: Using default ACCESS_TOKEN_SECRET. Update it in your environment.")
	}
	if AppConfig.RefreshTokenSecret == "defaultSecret" {
		log.Println("Warning: Using default REFRESH_TOKEN_SECRET. Update it in your environment.")
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
