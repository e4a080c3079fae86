package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Addr             string
	DatabaseURL      string
	SettingsPath     string
	FrontendDir      string
	FontDir          string
	HolidaySourceURL string
	ImportTimeout    time.Duration
	Environment      string
}

func Load() Config {
	return Config{
		Addr:             getEnv("APP_ADDR", ":8080"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		SettingsPath:     getEnv("SETTINGS_PATH", "data/settings.db"),
		FrontendDir:      getEnv("FRONTEND_DIR", "frontend/dist"),
		FontDir:          getEnv("FONT_DIR", "fonts"),
		HolidaySourceURL: getEnv("HOLIDAY_SOURCE_URL", "https://www.argies.gr"),
		ImportTimeout:    getEnvDuration("IMPORT_TIMEOUT", 15*time.Second),
		Environment:      getEnv("APP_ENV", "development"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if c.DatabaseURL == "" && c.SettingsPath == "" {
		return fmt.Errorf("SETTINGS_PATH is required when DATABASE_URL is not set")
	}
	if c.ImportTimeout <= 0 {
		return fmt.Errorf("IMPORT_TIMEOUT must be positive")
	}
	return nil
}
