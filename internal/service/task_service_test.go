package service

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/taskhive/internal/db"
	"github.com/taskhive/internal/domain"
)

// setupTestTaskService creates a task service over a temp database with one user
func setupTestTaskService(t *testing.T) (domain.TaskService, *db.DB, *db.User, func()) {
	t.Helper()

	database, cleanup := setupTestDB(t)
	service := NewTaskService(database, slog.Default())

	user := db.NewUser("owner@example.com", "hash")
	if err := database.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	return service, database, user, cleanup
}

func stringPtr(s string) *string { return &s }

func TestCreateTask(t *testing.T) {
	service, _, user, cleanup := setupTestTaskService(t)
	defer cleanup()

	ctx := context.Background()

	task, err := service.CreateTask(ctx, user.ID, domain.CreateTaskRequest{
		Title:       "Write report",
		Description: "Quarterly summary",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Status != db.TaskStatusPending {
		t.Errorf("Expected default status 'pending', got '%s'", task.Status)
	}
	if task.UserID != user.ID {
		t.Errorf("Expected task owner '%s', got '%s'", user.ID, task.UserID)
	}

	// Creation is recorded in the history
	events, err := service.GetTaskHistory(ctx, user.ID, task.ID)
	if err != nil {
		t.Fatalf("Failed to get history: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("Expected 1 history event, got %d", len(events))
	}
	if events[0].Action != db.ActionCreated {
		t.Errorf("Expected action 'created', got '%s'", events[0].Action)
	}
}

func TestCreateTaskInvalidInput(t *testing.T) {
	service, _, user, cleanup := setupTestTaskService(t)
	defer cleanup()

	ctx := context.Background()

	tests := []struct {
		name string
		req  domain.CreateTaskRequest
	}{
		{"empty title", domain.CreateTaskRequest{Title: ""}},
		{"title too long", domain.CreateTaskRequest{Title: strings.Repeat("a", 201)}},
		{"unknown status", domain.CreateTaskRequest{Title: "ok", Status: "archived"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateTask(ctx, user.ID, tt.req)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !domain.IsInvalidInputError(err) {
				t.Errorf("Expected invalid input error, got %v", err)
			}
		})
	}
}

func TestListTasksFilterAndOrder(t *testing.T) {
	service, _, user, cleanup := setupTestTaskService(t)
	defer cleanup()

	ctx := context.Background()

	if _, err := service.CreateTask(ctx, user.ID, domain.CreateTaskRequest{Title: "first"}); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	if _, err := service.CreateTask(ctx, user.ID, domain.CreateTaskRequest{Title: "second", Status: db.TaskStatusInProgress}); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	all, err := service.ListTasks(ctx, user.ID, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(all))
	}

	inProgress, err := service.ListTasks(ctx, user.ID, db.TaskStatusInProgress)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(inProgress) != 1 {
		t.Fatalf("Expected 1 in_progress task, got %d", len(inProgress))
	}
	if inProgress[0].Title != "second" {
		t.Errorf("Expected task 'second', got '%s'", inProgress[0].Title)
	}

	if _, err := service.ListTasks(ctx, user.ID, "bogus"); err == nil {
		t.Error("Expected error for invalid status filter")
	} else if !domain.IsInvalidInputError(err) {
		t.Errorf("Expected invalid input error, got %v", err)
	}
}

func TestUpdateTaskCompletion(t *testing.T) {
	service, database, user, cleanup := setupTestTaskService(t)
	defer cleanup()

	ctx := context.Background()

	task, err := service.CreateTask(ctx, user.ID, domain.CreateTaskRequest{Title: "finish me"})
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	updated, err := service.UpdateTask(ctx, user.ID, task.ID, domain.UpdateTaskRequest{
		Status: stringPtr(db.TaskStatusCompleted),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Status != db.TaskStatusCompleted {
		t.Errorf("Expected status 'completed', got '%s'", updated.Status)
	}
	if updated.CompletedAt == nil {
		t.Error("Expected completed_at to be set")
	}

	// Completion produces a notification
	notifications, err := database.ListNotificationsByUser(ctx, user.ID, false)
	if err != nil {
		t.Fatalf("Failed to list notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(notifications))
	}
	if notifications[0].Type != db.NotificationTaskCompleted {
		t.Errorf("Expected type 'task_completed', got '%s'", notifications[0].Type)
	}

	// Status transition is labeled status_changed in the history
	events, err := service.GetTaskHistory(ctx, user.ID, task.ID)
	if err != nil {
		t.Fatalf("Failed to get history: %v", err)
	}
	if events[0].Action != db.ActionStatusChanged {
		t.Errorf("Expected latest action 'status_changed', got '%s'", events[0].Action)
	}

	// Leaving completed clears completed_at
	reopened, err := service.UpdateTask(ctx, user.ID, task.ID, domain.UpdateTaskRequest{
		Status: stringPtr(db.TaskStatusPending),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if reopened.CompletedAt != nil {
		t.Error("Expected completed_at to be cleared when task is reopened")
	}
}

func TestUpdateTaskFieldsOnly(t *testing.T) {
	service, _, user, cleanup := setupTestTaskService(t)
	defer cleanup()

	ctx := context.Background()

	task, err := service.CreateTask(ctx, user.ID, domain.CreateTaskRequest{Title: "old title"})
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	updated, err := service.UpdateTask(ctx, user.ID, task.ID, domain.UpdateTaskRequest{
		Title:       stringPtr("new title"),
		Description: stringPtr("now with details"),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Title != "new title" {
		t.Errorf("Expected title 'new title', got '%s'", updated.Title)
	}
	if updated.Status != db.TaskStatusPending {
		t.Errorf("Status should be unchanged, got '%s'", updated.Status)
	}

	events, err := service.GetTaskHistory(ctx, user.ID, task.ID)
	if err != nil {
		t.Fatalf("Failed to get history: %v", err)
	}
	if events[0].Action != db.ActionUpdated {
		t.Errorf("Expected latest action 'updated', got '%s'", events[0].Action)
	}
}

func TestUpdateTaskDueDateResetsReminder(t *testing.T) {
	service, database, user, cleanup := setupTestTaskService(t)
	defer cleanup()

	ctx := context.Background()

	due := time.Now().Add(2 * time.Hour)
	task, err := service.CreateTask(ctx, user.ID, domain.CreateTaskRequest{Title: "due soon", DueDate: &due})
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	if err := database.MarkTaskReminderSent(ctx, task.ID); err != nil {
		t.Fatalf("Failed to mark reminder sent: %v", err)
	}

	newDue := due.Add(48 * time.Hour)
	if _, err := service.UpdateTask(ctx, user.ID, task.ID, domain.UpdateTaskRequest{DueDate: &newDue}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	reloaded, err := database.GetTask(ctx, task.ID, user.ID)
	if err != nil {
		t.Fatalf("Failed to reload task: %v", err)
	}
	if reloaded.ReminderSent {
		t.Error("Expected reminder flag to be reset when due date moves")
	}
}

func TestCrossUserAccessIsNotFound(t *testing.T) {
	service, database, user, cleanup := setupTestTaskService(t)
	defer cleanup()

	ctx := context.Background()

	other := db.NewUser("other@example.com", "hash")
	if err := database.CreateUser(ctx, other); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	task, err := service.CreateTask(ctx, user.ID, domain.CreateTaskRequest{Title: "private"})
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	// Another user sees someone else's task as missing, not forbidden
	if _, err := service.GetTask(ctx, other.ID, task.ID); !domain.IsNotFoundError(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
	if _, err := service.UpdateTask(ctx, other.ID, task.ID, domain.UpdateTaskRequest{Title: stringPtr("stolen")}); !domain.IsNotFoundError(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
	if err := service.DeleteTask(ctx, other.ID, task.ID); !domain.IsNotFoundError(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
	if _, err := service.GetTaskHistory(ctx, other.ID, task.ID); !domain.IsNotFoundError(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	service, _, user, cleanup := setupTestTaskService(t)
	defer cleanup()

	ctx := context.Background()

	task, err := service.CreateTask(ctx, user.ID, domain.CreateTaskRequest{Title: "ephemeral"})
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	if err := service.DeleteTask(ctx, user.ID, task.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := service.GetTask(ctx, user.ID, task.ID); !domain.IsNotFoundError(err) {
		t.Errorf("Expected not found after delete, got %v", err)
	}

	// Deleting again reports not found
	if err := service.DeleteTask(ctx, user.ID, task.ID); !domain.IsNotFoundError(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
}
