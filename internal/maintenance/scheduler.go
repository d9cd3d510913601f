// Package maintenance runs the server's background jobs on a cron schedule:
// purging expired sessions and creating due-soon task reminders.
package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/taskhive/internal/config"
	"github.com/taskhive/internal/db"
)

// Scheduler owns the cron runner for background maintenance jobs
type Scheduler struct {
	database *db.DB
	config   *config.Config
	logger   *slog.Logger
	cron     *cron.Cron
}

// NewScheduler creates a maintenance scheduler
func NewScheduler(database *db.DB, cfg *config.Config, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		database: database,
		config:   cfg,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start registers the jobs and starts the cron runner
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.config.Maintenance.SessionPurgeSpec, func() {
		if _, err := s.PurgeExpiredSessions(context.Background()); err != nil {
			s.logger.Error("session purge failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule session purge: %w", err)
	}

	if _, err := s.cron.AddFunc(s.config.Maintenance.ReminderSpec, func() {
		if _, err := s.SendDueSoonReminders(context.Background()); err != nil {
			s.logger.Error("due-soon reminder run failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule due-soon reminders: %w", err)
	}

	s.cron.Start()
	s.logger.Info("maintenance scheduler started",
		"sessionPurge", s.config.Maintenance.SessionPurgeSpec,
		"reminders", s.config.Maintenance.ReminderSpec,
		"dueSoonWindow", s.config.Maintenance.DueSoonWindow,
	)
	return nil
}

// Stop stops the cron runner and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("maintenance scheduler stopped")
}

// PurgeExpiredSessions deletes sessions whose expiry has passed and returns
// the number removed
func (s *Scheduler) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := s.database.DeleteExpiredSessions(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.logger.InfoContext(ctx, "purged expired sessions", "count", removed)
	}
	return removed, nil
}

// SendDueSoonReminders creates a task_due_soon notification for every
// unfinished task due inside the configured window that has not been
// reminded yet, and returns the number of reminders created. The
// reminder_sent flag keeps this to at most one reminder per task.
func (s *Scheduler) SendDueSoonReminders(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(s.config.Maintenance.DueSoonWindow)
	tasks, err := s.database.ListTasksDueBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, task := range tasks {
		message := fmt.Sprintf("Task %q is due by %s", task.Title, task.DueDate.Format(time.RFC3339))
		notification := db.NewNotification(task.UserID, task.ID, db.NotificationTaskDueSoon, message)
		if err := s.database.CreateNotification(ctx, notification); err != nil {
			s.logger.ErrorContext(ctx, "failed to create due-soon notification", "taskID", task.ID, "error", err)
			continue
		}
		if err := s.database.MarkTaskReminderSent(ctx, task.ID); err != nil {
			s.logger.ErrorContext(ctx, "failed to mark reminder sent", "taskID", task.ID, "error", err)
			continue
		}
		sent++
	}

	if sent > 0 {
		s.logger.InfoContext(ctx, "sent due-soon reminders", "count", sent)
	}
	return sent, nil
}
