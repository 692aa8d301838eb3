package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort       string
	DatabaseType     string // sqlite, postgres, or mysql
	DatabasePath     string // sqlite file path
	DatabaseURL      string // postgres/mysql connection string
	MigrationsPath   string
	StaticFilesPath  string
	SettingsSecret   string
	SettingsTokenTTL time.Duration
	AWSRegion        string
	ReportFromEmail  string
	ReportToEmail    string
	Debug            bool
}

// Load reads configuration from a .env file (if present) and environment
// variables with sensible defaults
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	return &Config{
		ServerPort:       getEnv("PORT", "8080"),
		DatabaseType:     getEnv("DB_TYPE", "sqlite"),
		DatabasePath:     getEnv("DB_PATH", "./wordrush.db"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		MigrationsPath:   getEnv("MIGRATIONS_PATH", "./migrations"),
		StaticFilesPath:  getEnv("STATIC_PATH", "./static"),
		SettingsSecret:   getEnv("SETTINGS_SECRET", ""),
		SettingsTokenTTL: getDuration("SETTINGS_TOKEN_TTL", 30*time.Minute),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		ReportFromEmail:  getEnv("REPORT_FROM_EMAIL", ""),
		ReportToEmail:    getEnv("REPORT_TO_EMAIL", ""),
		Debug:            getEnv("DEBUG", "false") == "true",
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration reads a duration environment variable or returns a default value
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s value %q, using default", key, value)
		return defaultValue
	}
	return d
}
