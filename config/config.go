package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// HTTP server configuration
	HTTP HTTPConfig

	// Feature flags
	Features FeatureFlags

	// Helper rendering options
	Helper HelperConfig

	// Gallery file; empty uses the built-in gallery
	GalleryPath string

	// LogLevel is one of debug, info, warn, error
	LogLevel string
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	Enabled bool
	Host    string
	Port    int
}

// FeatureFlags holds feature flag settings
type FeatureFlags struct {
	TemplRoutesEnabled bool
}

// HelperConfig configures how field names and ids are generated
type HelperConfig struct {
	FieldPrefix   string
	IDReplacement string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTP: HTTPConfig{
			Enabled: getEnvBool("HTMLBUTTON_HTTP_ENABLED", true),
			Host:    getEnvString("HTMLBUTTON_HTTP_HOST", "0.0.0.0"),
			Port:    getEnvInt("HTMLBUTTON_HTTP_PORT", 8080),
		},
		Features: FeatureFlags{
			TemplRoutesEnabled: getEnvBool("HTMLBUTTON_FEATURE_TEMPL", true),
		},
		Helper: HelperConfig{
			FieldPrefix:   os.Getenv("HTMLBUTTON_FIELD_PREFIX"),
			IDReplacement: getEnvString("HTMLBUTTON_ID_REPLACEMENT", "_"),
		},
		GalleryPath: os.Getenv("HTMLBUTTON_GALLERY_PATH"),
		LogLevel:    getEnvString("HTMLBUTTON_LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid HTTP port %d", c.HTTP.Port)
	}
	return nil
}

// GetAddress returns the HTTP server address
func (c *Config) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}

// Helper functions for environment variables
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
