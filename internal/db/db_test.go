package db

import (
	"context"
	"os"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	t.Helper()

	tmpDB, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("Failed to create temp database: %v", err)
	}
	tmpDB.Close()

	database, err := Init(tmpDB.Name())
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}

	cleanup := func() {
		database.Close()
		os.Remove(tmpDB.Name())
	}

	return database, cleanup
}

func TestForeignKeysEnabled(t *testing.T) {
	database, cleanup := setupTestDB(t)
	defer cleanup()

	var enabled int
	if err := database.QueryRowContext(context.Background(), "PRAGMA foreign_keys").Scan(&enabled); err != nil {
		t.Fatalf("Failed to read foreign_keys pragma: %v", err)
	}
	if enabled != 1 {
		t.Fatalf("Expected foreign_keys pragma to be 1, got %d", enabled)
	}
}

func TestDeleteTaskCascades(t *testing.T) {
	database, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	user := NewUser("cascade@example.com", "hash")
	if err := database.CreateUser(ctx, user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	task := NewTask(user.ID, "Doomed task", "", TaskStatusPending, nil)
	if err := database.CreateTask(ctx, task); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	if err := database.CreateTaskEvent(ctx, NewTaskEvent(task.ID, user.ID, ActionCreated, "created")); err != nil {
		t.Fatalf("Failed to create task event: %v", err)
	}
	if err := database.CreateNotification(ctx, NewNotification(user.ID, task.ID, NotificationTaskDueSoon, "due soon")); err != nil {
		t.Fatalf("Failed to create notification: %v", err)
	}

	removed, err := database.DeleteTask(ctx, task.ID, user.ID)
	if err != nil {
		t.Fatalf("Failed to delete task: %v", err)
	}
	if removed != 1 {
		t.Fatalf("Expected 1 task removed, got %d", removed)
	}

	events, err := database.ListTaskEvents(ctx, task.ID)
	if err != nil {
		t.Fatalf("Failed to list task events: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("Expected task events to be removed with the task, found %d", len(events))
	}

	notifications, err := database.ListNotificationsByUser(ctx, user.ID, false)
	if err != nil {
		t.Fatalf("Failed to list notifications: %v", err)
	}
	if len(notifications) != 0 {
		t.Errorf("Expected notifications to be removed with the task, found %d", len(notifications))
	}
}

func TestUpdateTaskRefreshesUpdatedAt(t *testing.T) {
	database, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	user := NewUser("stamp@example.com", "hash")
	if err := database.CreateUser(ctx, user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	task := NewTask(user.ID, "Original title", "", TaskStatusPending, nil)
	if err := database.CreateTask(ctx, task); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	before := task.UpdatedAt
	time.Sleep(5 * time.Millisecond)

	task.Title = "Renamed"
	if err := database.UpdateTask(ctx, task); err != nil {
		t.Fatalf("Failed to update task: %v", err)
	}

	if !task.UpdatedAt.After(before) {
		t.Errorf("Expected UpdatedAt to advance after update, got %v (was %v)", task.UpdatedAt, before)
	}

	stored, err := database.GetTask(ctx, task.ID, user.ID)
	if err != nil {
		t.Fatalf("Failed to reload task: %v", err)
	}
	if !stored.UpdatedAt.After(before) {
		t.Errorf("Expected stored UpdatedAt to advance, got %v (was %v)", stored.UpdatedAt, before)
	}
}
