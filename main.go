package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arbazessaqkhan/jktfeed/config"
	"github.com/arbazessaqkhan/jktfeed/database"
	"github.com/arbazessaqkhan/jktfeed/jobs"
	"github.com/arbazessaqkhan/jktfeed/store"
	"github.com/arbazessaqkhan/jktfeed/web"
)

func main() {
	// Command line flags
	var (
		migrate = flag.Bool("migrate", false, "Run database migration on startup")
		seed    = flag.Bool("seed", false, "Seed database with the admin user and catalog")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogging(cfg.App.Environment)

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatal().Err(err).Msg("database connection check failed")
	}

	// Run migration if requested
	if *migrate {
		if err := database.AutoMigrate(database.DB); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	// Seed database if requested
	if *seed {
		if err := database.SeedData(database.DB, &cfg.Auth); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	// Abandoned cart cleanup
	janitor := jobs.NewCartJanitor(store.New(database.DB), time.Duration(cfg.Cart.TTLHours)*time.Hour)
	janitor.Start()

	// Create and start web server
	server := web.NewServer(cfg, database.DB)
	go func() {
		if err := server.Start(cfg.App.Port); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := server.Shutdown(); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := janitor.Stop(); err != nil {
		log.Error().Err(err).Msg("janitor shutdown failed")
	}
}

func setupLogging(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
