package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/martige/matchbot/internal/archive"
	"github.com/martige/matchbot/internal/config"
	"github.com/martige/matchbot/internal/database"
	"github.com/martige/matchbot/internal/dathost"
	server "github.com/martige/matchbot/internal/http"
	"github.com/martige/matchbot/internal/metrics"
	slacknotifier "github.com/martige/matchbot/internal/notifier/slack"
	"github.com/martige/matchbot/internal/processor"
	"github.com/martige/matchbot/internal/relay"
	"github.com/martige/matchbot/internal/stats"
	"github.com/martige/matchbot/internal/steam"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer dbTeardown()

	archiveStore, err := archive.NewStore(cfg.Archive.Endpoint, cfg.Archive.AccessKey, cfg.Archive.SecretKey, cfg.Archive.Bucket, cfg.Archive.BaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize archive store: %s", err)
	}

	matchStore := stats.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	gameServer := dathost.NewClient(cfg.DatHost.Username, cfg.DatHost.Password)
	profiles := steam.NewClient(cfg.Steam.APIKey)
	notifier := slacknotifier.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	proc := processor.New(matchStore, gameServer, archiveStore, profiles, notifier, metricsSvc, cfg.TVDelay)
	rel := relay.New(gameServer, cfg.DatHost.ServerID, metricsSvc)

	s := server.NewServer(
		matchStore,
		metricsSvc,
		metricsHandler,
		cfg,
		gameServer,
		proc,
		rel,
	)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Pipeline runs already past the broadcast delay get a generous
		// window to finish before the listener is torn down.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
