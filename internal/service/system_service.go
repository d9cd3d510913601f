package service

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/taskhive/internal/db"
	"github.com/taskhive/internal/domain"
	"github.com/taskhive/internal/system"
)

// systemService implements the SystemService interface
type systemService struct {
	database  *db.DB
	logger    *slog.Logger
	startedAt time.Time
}

// NewSystemService creates a new system service
func NewSystemService(database *db.DB, logger *slog.Logger) domain.SystemService {
	return &systemService{
		database:  database,
		logger:    logger,
		startedAt: time.Now(),
	}
}

// GetSystemStats collects host statistics plus store row counts
func (s *systemService) GetSystemStats(ctx context.Context) (*domain.SystemStats, error) {
	host, err := system.CollectHostStats(filepath.Dir(s.database.GetDBPath()))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to collect host stats", "error", err)
		return nil, err
	}

	stats := &domain.SystemStats{
		Host:          host,
		UptimeSeconds: time.Since(s.startedAt).Seconds(),
	}

	if stats.Users, err = s.database.CountUsers(ctx); err != nil {
		return nil, domain.WrapDatabaseOperation("count users", err)
	}
	if stats.Tasks, err = s.database.CountTasks(ctx); err != nil {
		return nil, domain.WrapDatabaseOperation("count tasks", err)
	}
	if stats.Sessions, err = s.database.CountSessions(ctx); err != nil {
		return nil, domain.WrapDatabaseOperation("count sessions", err)
	}
	if stats.Notifications, err = s.database.CountNotifications(ctx); err != nil {
		return nil, domain.WrapDatabaseOperation("count notifications", err)
	}

	return stats, nil
}
