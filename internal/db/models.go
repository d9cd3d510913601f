package db

import (
	"time"

	"github.com/google/uuid"
)

// Task status values
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// Task event actions
const (
	ActionCreated       = "created"
	ActionUpdated       = "updated"
	ActionStatusChanged = "status_changed"
)

// Notification types
const (
	NotificationTaskCompleted = "task_completed"
	NotificationTaskDueSoon   = "task_due_soon"
)

// User represents a registered account
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"` // stored lowercase
	PasswordHash string    `json:"-" db:"password_hash"` // Never expose password hash in JSON
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Session represents an active login, revoked on logout
type Session struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

// Expired reports whether the session's expiry has passed
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Task represents a task owned by a user
type Task struct {
	ID           string     `json:"id" db:"id"`
	UserID       string     `json:"user_id" db:"user_id"`
	Title        string     `json:"title" db:"title"`
	Description  string     `json:"description" db:"description"`
	Status       string     `json:"status" db:"status"` // pending, in_progress, completed
	DueDate      *time.Time `json:"due_date" db:"due_date"`           // nil when the task has no due date
	CompletedAt  *time.Time `json:"completed_at" db:"completed_at"`   // Set while status is completed
	ReminderSent bool       `json:"-" db:"reminder_sent"`             // Internal flag for the due-soon job
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// ApplyStatusTimestamps sets or clears CompletedAt to match the current status
func (t *Task) ApplyStatusTimestamps() {
	if t.Status == TaskStatusCompleted {
		now := time.Now()
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
}

// TaskEvent represents one entry in a task's change history
type TaskEvent struct {
	ID        string    `json:"id" db:"id"`
	TaskID    string    `json:"task_id" db:"task_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Action    string    `json:"action" db:"action"` // created, updated, status_changed
	Detail    string    `json:"detail" db:"detail"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Notification represents a message delivered to a user about one of their tasks
type Notification struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	TaskID    string    `json:"task_id" db:"task_id"`
	Type      string    `json:"type" db:"type"` // task_completed, task_due_soon
	Message   string    `json:"message" db:"message"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewUser creates a new User with a generated UUID
func NewUser(email, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
}

// NewSession creates a new Session for a user with a generated UUID
func NewSession(userID string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// NewTask creates a new Task with a generated UUID
func NewTask(userID, title, description, status string, dueDate *time.Time) *Task {
	if status == "" {
		status = TaskStatusPending
	}
	now := time.Now()
	return &Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      status,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewTaskEvent creates a new TaskEvent with a generated UUID
func NewTaskEvent(taskID, userID, action, detail string) *TaskEvent {
	return &TaskEvent{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		UserID:    userID,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
}

// NewNotification creates a new Notification with a generated UUID
func NewNotification(userID, taskID, notificationType, message string) *Notification {
	return &Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		TaskID:    taskID,
		Type:      notificationType,
		Message:   message,
		CreatedAt: time.Now(),
	}
}
