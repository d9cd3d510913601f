package logger

import (
	"log/slog"
	"os"
)

// InitLogger initializes and configures the application logger based on environment.
// Development gets a verbose text handler with source locations; everything
// else gets JSON for structured log collection.
func InitLogger(environment string) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if environment == "development" {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)

	// Set as default logger so it can be used throughout the application
	slog.SetDefault(logger)

	return logger
}
