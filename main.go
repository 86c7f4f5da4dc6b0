package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/dsj-tournaments/internal/config"
	"github.com/mauv0809/dsj-tournaments/internal/database"
	server "github.com/mauv0809/dsj-tournaments/internal/http"
	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"github.com/mauv0809/dsj-tournaments/internal/metrics"
	"github.com/mauv0809/dsj-tournaments/internal/notifier/slack"
	"github.com/mauv0809/dsj-tournaments/internal/processor"
	"github.com/mauv0809/dsj-tournaments/internal/pubsub"
	"github.com/mauv0809/dsj-tournaments/internal/replay"
	"github.com/mauv0809/dsj-tournaments/internal/submission"
	"github.com/mauv0809/dsj-tournaments/internal/tournament"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	tournaments := tournament.NewSnapshot(tournament.New(db), metricsSvc)
	if err := tournaments.Start(cfg.RefreshInterval); err != nil {
		log.Fatalf("Failed to start tournament refresher: %s", err)
	}
	defer func() {
		if err := tournaments.Stop(); err != nil {
			log.Error("Failed to stop tournament refresher", "error", err)
		}
	}()

	var events pubsub.PubSubClient
	if cfg.ProjectID != "" {
		events = pubsub.New(cfg.ProjectID)
	} else {
		log.Warn("GCP_PROJECT not set, jump events will not be published")
		events = pubsub.NewNoop()
	}
	defer events.Close()

	replays := replay.NewClient(cfg.Replay.BaseURL, cfg.Replay.RateLimit)
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	pipeline := submission.New(tournaments, jump.New(db), replays, metricsSvc, events)

	s := server.NewServer(
		pipeline,
		processor.New(tournaments, notifier),
		metricsHandler,
		cfg,
		notifier,
		events,
	)

	// --- Record startup time ---
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
