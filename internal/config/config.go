package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	cfg := Config{
		DBName: getEnv("DB_NAME"),
		Port:   getEnv("PORT"),
		Slack: SlackConfig{
			Token:         getEnv("SLACK_BOT_TOKEN"),
			ChannelID:     getEnv("SLACK_CHANNEL_ID"),
			SigningSecret: getEnv("SLACK_SIGNING_SECRET"),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvDefault("TURSO_AUTH_TOKEN", ""),
		},
		Replay: ReplayConfig{
			BaseURL:   getEnv("REPLAY_API_URL"),
			RateLimit: getFloat("REPLAY_RATE_LIMIT", 5),
		},
		ProjectID:       getEnvDefault("GCP_PROJECT", ""),
		RefreshInterval: seconds(getFloat("TOURNAMENT_REFRESH_SECONDS", 30)),
	}
	return cfg
}

// getEnvDefault returns the value of an optional env var, or fallback when unset.
func getEnvDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// seconds converts fractional seconds without truncating sub-second values.
func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

func getFloat(key string, fallback float64) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value <= 0 {
		log.Warn("Invalid numeric environment variable, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return value
}
