package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName          string
	Port            string
	Slack           SlackConfig
	Turso           TursoConfig
	Replay          ReplayConfig
	ProjectID       string
	RefreshInterval time.Duration
}
type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
type ReplayConfig struct {
	BaseURL   string
	RateLimit float64
}
