package main

import (
	"context"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/scoreline/internal/clock"
	"github.com/mauv0809/scoreline/internal/config"
	"github.com/mauv0809/scoreline/internal/database"
	"github.com/mauv0809/scoreline/internal/history"
	server "github.com/mauv0809/scoreline/internal/http"
	"github.com/mauv0809/scoreline/internal/kvstore"
	"github.com/mauv0809/scoreline/internal/live"
	"github.com/mauv0809/scoreline/internal/metrics"
	"github.com/mauv0809/scoreline/internal/notifier/slack"
	"github.com/mauv0809/scoreline/internal/pubsub"
	"github.com/mauv0809/scoreline/internal/roster"
	"github.com/mauv0809/scoreline/internal/tracker"
	"github.com/rs/cors"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	kv := kvstore.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	pubsub, err := pubsub.New(context.Background(), cfg.ProjectID)
	if err != nil {
		log.Fatalf("Failed to initialize pubsub: %s", err)
	}
	defer pubsub.Close()

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = rand.Uint64()
	} else {
		log.Info("Using fixed random seed", "seed", seed)
	}

	hub := live.NewHub()
	defer hub.Close()
	tr := tracker.New(tracker.Deps{
		KV:       kv,
		History:  history.New(kv),
		Rosters:  roster.New(kv),
		PubSub:   pubsub,
		Notifier: notifier,
		Metrics:  metricsSvc,
		Counters: metrics.New(db),
		Random:   rand.New(rand.NewPCG(seed, seed)),
		Live:     hub,
	})
	if err := tr.Resume(); err != nil {
		log.Error("Failed to resume running matches", "error", err)
	}

	if cfg.Clock.Enabled {
		matchClock, err := clock.New(tr, time.Second)
		if err != nil {
			log.Fatalf("Failed to create match clock: %s", err)
		}
		if err := matchClock.Start(); err != nil {
			log.Fatalf("Failed to start match clock: %s", err)
		}
		defer func() {
			if err := matchClock.Stop(); err != nil {
				log.Error("Failed to stop match clock", "error", err)
			}
		}()
	}

	s := server.NewServer(tr, notifier, metricsHandler, hub, cfg, pubsub)
	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(s)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
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

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
