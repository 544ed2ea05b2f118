// ============================================================================
// internal/shared/config.go
// Environment-driven configuration and env helper functions
// ============================================================================

package shared

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// PortalConfig holds the configuration for the teacher portal.
type PortalConfig struct {
	HTTPPort    string
	Environment string // development, staging, production

	// Upstream academic API
	APIBaseURL     string
	RequestTimeout time.Duration

	// Realtime push channel
	PushURL string

	// Local preference storage
	PrefsPath string

	// CORS Configuration
	CORS CORSConfig
}

// CORSConfig holds CORS-related configuration.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int // in seconds
}

// LoadEnv loads environment variables from a .env file.
func LoadEnv(envFile string) error {
	if envFile == "" {
		envFile = ".env"
	}

	if err := godotenv.Load(envFile); err != nil {
		log.Printf("Warning: %s file not found, using system environment variables", envFile)
		return err
	}

	log.Printf("Successfully loaded environment from %s", envFile)
	return nil
}

// LoadPortalConfig loads the portal configuration from the environment.
func LoadPortalConfig() (*PortalConfig, error) {
	config := &PortalConfig{
		HTTPPort:       GetEnv("HTTP_PORT", "8080"),
		Environment:    GetEnv("ENVIRONMENT", "development"),
		APIBaseURL:     GetEnv("SGA_API_URL", ""),
		RequestTimeout: GetDurationEnv("SGA_REQUEST_TIMEOUT", 15*time.Second),
		PushURL:        GetEnv("SGA_PUSH_URL", ""),
		PrefsPath:      GetEnv("SGA_PREFS_PATH", ".sga-preferencias.json"),
	}

	if config.APIBaseURL == "" {
		return nil, fmt.Errorf("SGA_API_URL environment variable is required")
	}

	config.CORS = CORSConfig{
		AllowedOrigins:   GetStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		AllowedMethods:   GetStringSliceEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		AllowedHeaders:   GetStringSliceEnv("CORS_ALLOWED_HEADERS", []string{"Content-Type", "Authorization"}),
		AllowCredentials: GetBoolEnv("CORS_ALLOW_CREDENTIALS", true),
		MaxAge:           GetIntEnv("CORS_MAX_AGE", 3600),
	}

	return config, nil
}

// ValidatePortalConfig validates the portal configuration.
func ValidatePortalConfig(config *PortalConfig) error {
	if config.HTTPPort == "" {
		return fmt.Errorf("HTTP port is required")
	}
	if config.APIBaseURL == "" {
		return fmt.Errorf("academic API base URL is required")
	}
	if config.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	return nil
}

// ============================================================================
// Environment Variable Helper Functions
// ============================================================================

// GetEnv retrieves an environment variable or returns a default value.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetIntEnv retrieves an integer environment variable or returns a default value.
func GetIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// GetBoolEnv retrieves a boolean environment variable or returns a default value.
func GetBoolEnv(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// GetDurationEnv retrieves a duration environment variable or returns a
// default value. Supports format like "30s", "5m", "1h".
func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s: %s, using default: %v", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// GetStringSliceEnv retrieves a comma-separated string list or returns a
// default value.
func GetStringSliceEnv(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var result []string
	for _, part := range strings.Split(valueStr, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}

	return result
}

// IsDevelopment checks if running in development environment.
func IsDevelopment(config *PortalConfig) bool {
	return config.Environment == "development"
}

// IsProduction checks if running in production environment.
func IsProduction(config *PortalConfig) bool {
	return config.Environment == "production"
}
