package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration
type Config struct {
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:":8080"`
	Environment   string `env:"ENVIRONMENT" envDefault:"development"`
	DatabasePath  string `env:"DATABASE_PATH" envDefault:"./data/taskhive.db"`
	Auth          AuthConfig
	CORS          CORSConfig
	Maintenance   MaintenanceConfig
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET" envDefault:"change-me-in-production-secret-key"`
	TokenTTL   time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"168h"`
	BcryptCost int           `env:"AUTH_BCRYPT_COST" envDefault:"10"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:3000,http://localhost:8080"`
}

// MaintenanceConfig holds the background job schedules
type MaintenanceConfig struct {
	SessionPurgeSpec string        `env:"MAINTENANCE_SESSION_PURGE_SPEC" envDefault:"@every 1h"`
	ReminderSpec     string        `env:"MAINTENANCE_REMINDER_SPEC" envDefault:"@every 15m"`
	DueSoonWindow    time.Duration `env:"MAINTENANCE_DUE_SOON_WINDOW" envDefault:"24h"`
}

// Load loads configuration from environment variables with defaults
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
