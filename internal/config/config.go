package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey string
	GeminiModel  string
	SaveDir      string
	PlayerName   string
	Telemetry    bool
}

// LoadConfig loads the configuration from a .env file (if present) and
// environment variables.
func LoadConfig() (*Config, error) {
	// Not fatal - env vars might be set directly.
	_ = godotenv.Load()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	return &Config{
		GeminiAPIKey: apiKey,
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-2.5-flash"),
		SaveDir:      getenv("DUNGEONEER_SAVE_DIR", ".saves"),
		PlayerName:   getenv("DUNGEONEER_PLAYER", "adventurer"),
		Telemetry:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "",
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
