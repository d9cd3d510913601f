package maintenance

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/taskhive/internal/config"
	"github.com/taskhive/internal/db"
)

func setupTestScheduler(t *testing.T) (*Scheduler, *db.DB, func()) {
	t.Helper()

	tmpDB, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("Failed to create temp database: %v", err)
	}
	tmpDB.Close()

	database, err := db.Init(tmpDB.Name())
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}

	cfg := &config.Config{
		Maintenance: config.MaintenanceConfig{
			SessionPurgeSpec: "@every 1h",
			ReminderSpec:     "@every 15m",
			DueSoonWindow:    24 * time.Hour,
		},
	}

	scheduler := NewScheduler(database, cfg, slog.Default())

	cleanup := func() {
		database.Close()
		os.Remove(tmpDB.Name())
	}

	return scheduler, database, cleanup
}

func createTestUser(t *testing.T, database *db.DB) *db.User {
	t.Helper()
	user := db.NewUser("owner@example.com", "hash")
	if err := database.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

func TestPurgeExpiredSessions(t *testing.T) {
	scheduler, database, cleanup := setupTestScheduler(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, database)

	expired := db.NewSession(user.ID, -time.Hour)
	live := db.NewSession(user.ID, time.Hour)
	for _, session := range []*db.Session{expired, live} {
		if err := database.CreateSession(ctx, session); err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
	}

	removed, err := scheduler.PurgeExpiredSessions(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if removed != 1 {
		t.Errorf("Expected 1 session purged, got %d", removed)
	}

	// The live session survives
	if _, err := database.GetSession(ctx, live.ID); err != nil {
		t.Errorf("Expected live session to remain, got %v", err)
	}
	if _, err := database.GetSession(ctx, expired.ID); err == nil {
		t.Error("Expected expired session to be gone")
	}
}

func TestSendDueSoonReminders(t *testing.T) {
	scheduler, database, cleanup := setupTestScheduler(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, database)

	soon := time.Now().Add(2 * time.Hour)
	farOff := time.Now().Add(72 * time.Hour)

	dueSoon := db.NewTask(user.ID, "due soon", "", "", &soon)
	dueLater := db.NewTask(user.ID, "due later", "", "", &farOff)
	noDueDate := db.NewTask(user.ID, "no due date", "", "", nil)
	doneAlready := db.NewTask(user.ID, "already done", "", db.TaskStatusCompleted, &soon)

	for _, task := range []*db.Task{dueSoon, dueLater, noDueDate, doneAlready} {
		if err := database.CreateTask(ctx, task); err != nil {
			t.Fatalf("Failed to create task: %v", err)
		}
	}

	sent, err := scheduler.SendDueSoonReminders(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sent != 1 {
		t.Errorf("Expected 1 reminder sent, got %d", sent)
	}

	notifications, err := database.ListNotificationsByUser(ctx, user.ID, false)
	if err != nil {
		t.Fatalf("Failed to list notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(notifications))
	}
	if notifications[0].Type != db.NotificationTaskDueSoon {
		t.Errorf("Expected type 'task_due_soon', got '%s'", notifications[0].Type)
	}
	if notifications[0].TaskID != dueSoon.ID {
		t.Errorf("Expected notification for task '%s', got '%s'", dueSoon.ID, notifications[0].TaskID)
	}

	// A second run must not remind the same task twice
	sent, err = scheduler.SendDueSoonReminders(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sent != 0 {
		t.Errorf("Expected 0 reminders on second run, got %d", sent)
	}
}

func TestSchedulerStartStop(t *testing.T) {
	scheduler, _, cleanup := setupTestScheduler(t)
	defer cleanup()

	if err := scheduler.Start(); err != nil {
		t.Fatalf("Failed to start scheduler: %v", err)
	}
	scheduler.Stop()
}

func TestSchedulerRejectsBadSpec(t *testing.T) {
	scheduler, _, cleanup := setupTestScheduler(t)
	defer cleanup()

	scheduler.config.Maintenance.SessionPurgeSpec = "not a cron spec"
	if err := scheduler.Start(); err == nil {
		t.Error("Expected error for invalid cron spec")
		scheduler.Stop()
	}
}
