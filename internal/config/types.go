package config

import "time"

// Config holds all configuration for the application. It is constructed once
// at startup and passed by reference into every component constructor;
// pipeline logic never reads the environment directly.
type Config struct {
	Port          string
	DBName        string
	MigrationsDir string
	// AuthToken protects the inbound API routes. Empty disables the check.
	AuthToken string
	// TVDelay is the configured GOTV broadcast delay the pipeline waits out
	// before fetching the demo.
	TVDelay time.Duration
	DatHost DatHostConfig
	Steam   SteamConfig
	Archive ArchiveConfig
	Slack   SlackConfig
	Turso   TursoConfig
}

type DatHostConfig struct {
	Username string
	Password string
	// ServerID is the game server the chat-command relay targets.
	ServerID string
}

type SteamConfig struct {
	APIKey string
}

type ArchiveConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	// BaseURL is the public address uploaded demos are served from.
	BaseURL string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
