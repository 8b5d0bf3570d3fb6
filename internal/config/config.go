package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the process-wide settings. The session secret lives here
// rather than in the auth package so tests and deployments can run with
// distinct keys; rotating it invalidates every outstanding session.
type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string
	Debug         bool
}

// Load reads configuration from a .env file (when present) and the
// environment, applying defaults for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, reading env vars from system")
	}

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		DatabaseURL:   getEnvOrDefault("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=inkwell port=5432 sslmode=disable"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Debug:         os.Getenv("DEBUG") == "true",
	}
	if cfg.SessionSecret == "" {
		logrus.Warn("SESSION_SECRET not set, using insecure default")
		cfg.SessionSecret = "secret_key_change_me"
	}
	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
