package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Sheet SheetConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// SheetConfig holds the persistence collaborator configuration.
// Endpoint is the deployed spreadsheet web-app URL. When Mode is "demo"
// (or Endpoint is empty) the server runs against an in-memory backend
// seeded with demo records instead of the real endpoint.
type SheetConfig struct {
	Endpoint     string
	Mode         string // "http" or "demo"
	DemoPasscode string
}

func Load() (*Config, error) {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.Sheet = SheetConfig{
		Endpoint:     getEnv("SHEET_ENDPOINT", ""),
		Mode:         strings.ToLower(getEnv("SHEET_MODE", "")),
		DemoPasscode: getEnv("SHEET_DEMO_PASSCODE", "letmein"),
	}

	if config.Sheet.Mode == "" {
		if config.Sheet.Endpoint == "" {
			config.Sheet.Mode = "demo"
		} else {
			config.Sheet.Mode = "http"
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Sheet.Mode {
	case "http":
		if c.Sheet.Endpoint == "" {
			return fmt.Errorf("SHEET_ENDPOINT is required when SHEET_MODE=http")
		}
	case "demo":
	default:
		return fmt.Errorf("unsupported SHEET_MODE: %s", c.Sheet.Mode)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
