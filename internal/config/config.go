package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins string

	// Database configuration
	DatabaseURL string

	// Auth configuration
	JWTSecret            string
	JWTAccessExpiration  time.Duration
	JWTRefreshExpiration time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file. Using environment variables.")
	}

	config := &Config{
		// Server configuration
		Port:           getEnvInt("PORT", 8080),
		ReadTimeout:    time.Duration(getEnvInt("READ_TIMEOUT", 15)) * time.Second,
		WriteTimeout:   time.Duration(getEnvInt("WRITE_TIMEOUT", 15)) * time.Second,
		AllowedOrigins: getEnvString("ALLOWED_ORIGINS", "*"),

		// Database configuration
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Auth configuration
		JWTSecret:            os.Getenv("JWT_SECRET"),
		JWTAccessExpiration:  time.Duration(getEnvInt("JWT_ACCESS_EXPIRATION_MINUTES", 15)) * time.Minute,
		JWTRefreshExpiration: time.Duration(getEnvInt("JWT_REFRESH_EXPIRATION_HOURS", 168)) * time.Hour,

		// Logging configuration
		LogLevel:  getEnvString("LOG_LEVEL", "info"),
		LogFormat: getEnvString("LOG_FORMAT", "json"),
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// validateConfig checks that critical configuration values are set
func validateConfig(config *Config) error {
	if config.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if config.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvBool gets a boolean from an environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	valueStr = strings.ToLower(valueStr)
	return valueStr == "true" || valueStr == "1" || valueStr == "yes"
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
