package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/taskhive/internal/config"
	"github.com/taskhive/internal/db"
	"github.com/taskhive/internal/http"
	"github.com/taskhive/internal/logger"
	"github.com/taskhive/internal/maintenance"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load .env file if it exists (optional, won't error if missing)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger := logger.InitLogger(cfg.Environment)

	// Initialize database
	database, err := db.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Start background maintenance jobs
	scheduler := maintenance.NewScheduler(database, cfg, appLogger)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start maintenance scheduler: %v", err)
	}

	// Create HTTP server
	server := http.NewServer(cfg, database)

	// Start server
	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("starting server", "address", cfg.ServerAddress, "environment", cfg.Environment)
		errCh <- server.Run()
	}()

	// Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		appLogger.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		log.Fatalf("Server failed: %v", err)
	}

	// Drain in-flight requests, then stop the background jobs
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("server shutdown failed", "error", err)
	}
	scheduler.Stop()
}
