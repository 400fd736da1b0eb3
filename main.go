// Package main is the entry point for the FAQ hub API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"faqhub/src/app/server"
	"faqhub/src/infra/config"
	"faqhub/src/infra/db"
	"faqhub/src/infra/logger"
	"faqhub/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	ctx := context.Background()

	// Initialize database connection
	pg, err := db.New(ctx, cfg.Database, logger.WithComponent(log, "db"))
	if err != nil {
		return err
	}
	defer pg.Close()

	// Apply schema migrations and role seed
	if cfg.Database.Migrate {
		if err := pg.Migrate(ctx); err != nil {
			return err
		}
	}

	// Initialize repositories
	kbRepo := repo.NewPostgresRepository(pg, logger.WithComponent(log, "repo"))

	// Create and run HTTP server
	srv := server.New(cfg, log, kbRepo)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
