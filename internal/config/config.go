package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const defaultTVDelaySeconds = 105

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

	tvDelay := defaultTVDelaySeconds
	if v, ok := os.LookupEnv("TV_DELAY"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			log.Fatalf("Error: TV_DELAY must be a non-negative integer, got %q", v)
		}
		tvDelay = parsed
	}

	cfg := Config{
		Port:          getEnv("PORT"),
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: "./migrations",
		AuthToken:     os.Getenv("AUTH_TOKEN"),
		TVDelay:       time.Duration(tvDelay) * time.Second,
		DatHost: DatHostConfig{
			Username: getEnv("DATHOST_USER"),
			Password: getEnv("DATHOST_PASSWORD"),
			ServerID: getEnv("DATHOST_SERVER_ID"),
		},
		Steam: SteamConfig{
			APIKey: getEnv("STEAM_KEY"),
		},
		Archive: ArchiveConfig{
			Endpoint:  getEnv("BUCKET_ENDPOINT"),
			AccessKey: getEnv("BUCKET_ACCESS_KEY"),
			SecretKey: getEnv("BUCKET_SECRET_KEY"),
			Bucket:    getEnv("BUCKET_NAME"),
			BaseURL:   getEnv("BUCKET_BASE_URL"),
		},
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN"),
			ChannelID: getEnv("SLACK_CHANNEL_ID"),
		},
		Turso: TursoConfig{
			PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
			AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
		},
	}
	return cfg
}
