package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taskhive/internal/db"
	"github.com/taskhive/internal/domain"
	"github.com/taskhive/internal/validation"
)

// taskService implements the TaskService interface
type taskService struct {
	database *db.DB
	logger   *slog.Logger
}

// NewTaskService creates a new task service
func NewTaskService(database *db.DB, logger *slog.Logger) domain.TaskService {
	return &taskService{
		database: database,
		logger:   logger,
	}
}

// CreateTask creates a task for a user and records the creation event
func (s *taskService) CreateTask(ctx context.Context, userID string, req domain.CreateTaskRequest) (*db.Task, error) {
	if err := validation.ValidateTaskTitle(req.Title); err != nil {
		s.logger.WarnContext(ctx, "invalid task title", "error", err)
		return nil, domain.WrapInvalidInput("title", err)
	}
	if err := validation.ValidateTaskDescription(req.Description); err != nil {
		s.logger.WarnContext(ctx, "invalid task description", "error", err)
		return nil, domain.WrapInvalidInput("description", err)
	}
	if req.Status != "" {
		if err := validation.ValidateTaskStatus(req.Status); err != nil {
			s.logger.WarnContext(ctx, "invalid task status", "status", req.Status, "error", err)
			return nil, domain.WrapInvalidInput("status", err)
		}
	}

	task := db.NewTask(userID, req.Title, req.Description, req.Status, req.DueDate)
	if err := s.database.CreateTask(ctx, task); err != nil {
		s.logger.ErrorContext(ctx, "failed to create task", "userID", userID, "error", err)
		return nil, domain.WrapDatabaseOperation("create task", err)
	}

	s.recordEvent(ctx, task, db.ActionCreated, fmt.Sprintf("task %q created", task.Title))

	s.logger.InfoContext(ctx, "task created", "taskID", task.ID, "userID", userID)
	return task, nil
}

// GetTask retrieves a task owned by the user. Tasks owned by other users
// surface as not found, never as a permission error.
func (s *taskService) GetTask(ctx context.Context, userID, taskID string) (*db.Task, error) {
	task, err := s.database.GetTask(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapTaskNotFound(taskID, err)
		}
		s.logger.ErrorContext(ctx, "failed to get task", "taskID", taskID, "error", err)
		return nil, domain.WrapDatabaseOperation("get task", err)
	}
	return task, nil
}

// ListTasks retrieves a user's tasks, optionally filtered by status
func (s *taskService) ListTasks(ctx context.Context, userID, status string) ([]*db.Task, error) {
	if status != "" {
		if err := validation.ValidateTaskStatus(status); err != nil {
			return nil, domain.WrapInvalidInput("status filter", err)
		}
	}

	tasks, err := s.database.ListTasksByUser(ctx, userID, status)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks", "userID", userID, "error", err)
		return nil, domain.WrapDatabaseOperation("list tasks", err)
	}
	return tasks, nil
}

// UpdateTask applies a partial update to a task, tracks the status
// transition, and records a history event
func (s *taskService) UpdateTask(ctx context.Context, userID, taskID string, req domain.UpdateTaskRequest) (*db.Task, error) {
	task, err := s.GetTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	var changed []string
	statusChanged := false

	if req.Title != nil && *req.Title != task.Title {
		if err := validation.ValidateTaskTitle(*req.Title); err != nil {
			return nil, domain.WrapInvalidInput("title", err)
		}
		task.Title = *req.Title
		changed = append(changed, "title")
	}

	if req.Description != nil && *req.Description != task.Description {
		if err := validation.ValidateTaskDescription(*req.Description); err != nil {
			return nil, domain.WrapInvalidInput("description", err)
		}
		task.Description = *req.Description
		changed = append(changed, "description")
	}

	if req.DueDate != nil && (task.DueDate == nil || !task.DueDate.Equal(*req.DueDate)) {
		task.DueDate = req.DueDate
		// A moved due date gets a fresh reminder
		task.ReminderSent = false
		changed = append(changed, "due date")
	}

	oldStatus := task.Status
	if req.Status != nil && *req.Status != task.Status {
		if err := validation.ValidateTaskStatus(*req.Status); err != nil {
			return nil, domain.WrapInvalidInput("status", err)
		}
		task.Status = *req.Status
		task.ApplyStatusTimestamps()
		statusChanged = true
		changed = append(changed, fmt.Sprintf("status %s -> %s", oldStatus, task.Status))
	}

	if len(changed) == 0 {
		return task, nil
	}

	if err := s.database.UpdateTask(ctx, task); err != nil {
		s.logger.ErrorContext(ctx, "failed to update task", "taskID", task.ID, "error", err)
		return nil, domain.WrapDatabaseOperation("update task", err)
	}

	// Status wins the action label when an update touches both
	action := db.ActionUpdated
	if statusChanged {
		action = db.ActionStatusChanged
	}
	s.recordEvent(ctx, task, action, "changed "+strings.Join(changed, ", "))

	if statusChanged && task.Status == db.TaskStatusCompleted {
		s.notifyCompleted(ctx, task)
	}

	s.logger.InfoContext(ctx, "task updated", "taskID", task.ID, "changed", changed)
	return task, nil
}

// DeleteTask deletes a task owned by the user; history and notifications
// go with it via the store's cascade
func (s *taskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	removed, err := s.database.DeleteTask(ctx, taskID, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task", "taskID", taskID, "error", err)
		return domain.WrapDatabaseOperation("delete task", err)
	}
	if removed == 0 {
		return domain.WrapTaskNotFound(taskID, nil)
	}

	s.logger.InfoContext(ctx, "task deleted", "taskID", taskID, "userID", userID)
	return nil
}

// GetTaskHistory retrieves the change history of a task owned by the user
func (s *taskService) GetTaskHistory(ctx context.Context, userID, taskID string) ([]*db.TaskEvent, error) {
	// Ownership check before exposing history
	if _, err := s.GetTask(ctx, userID, taskID); err != nil {
		return nil, err
	}

	events, err := s.database.ListTaskEvents(ctx, taskID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list task events", "taskID", taskID, "error", err)
		return nil, domain.WrapDatabaseOperation("list task events", err)
	}
	return events, nil
}

// recordEvent appends a history event; failures are logged, never fatal
func (s *taskService) recordEvent(ctx context.Context, task *db.Task, action, detail string) {
	event := db.NewTaskEvent(task.ID, task.UserID, action, detail)
	if err := s.database.CreateTaskEvent(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to record task event", "taskID", task.ID, "action", action, "error", err)
	}
}

// notifyCompleted creates a task_completed notification; failures are
// logged, never fatal
func (s *taskService) notifyCompleted(ctx context.Context, task *db.Task) {
	message := fmt.Sprintf("Task %q has been completed", task.Title)
	notification := db.NewNotification(task.UserID, task.ID, db.NotificationTaskCompleted, message)
	if err := s.database.CreateNotification(ctx, notification); err != nil {
		s.logger.ErrorContext(ctx, "failed to create completion notification", "taskID", task.ID, "error", err)
	}
}
