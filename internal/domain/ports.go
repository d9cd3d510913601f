package domain

import (
	"context"

	"github.com/taskhive/internal/db"
	"github.com/taskhive/internal/system"
)

// ============================================================================
// Primary Ports (Application Use Cases)
// ============================================================================

// AuthService defines the primary port for authentication use cases
type AuthService interface {
	// Signup registers a new account and returns the user with a token
	// bound to a fresh session
	Signup(ctx context.Context, email, password string) (*db.User, string, error)
	// Login verifies credentials and returns the user with a token bound
	// to a fresh session
	Login(ctx context.Context, email, password string) (*db.User, string, error)
	// Logout destroys all sessions for the user; succeeds when none exist
	Logout(ctx context.Context, userID string) error
	// Authenticate resolves a bearer token to a user ID
	Authenticate(ctx context.Context, token string) (string, error)
	// CurrentUser loads the user backing a resolved identity
	CurrentUser(ctx context.Context, userID string) (*db.User, error)
}

// TaskService defines the primary port for task management use cases
type TaskService interface {
	CreateTask(ctx context.Context, userID string, req CreateTaskRequest) (*db.Task, error)
	GetTask(ctx context.Context, userID, taskID string) (*db.Task, error)
	ListTasks(ctx context.Context, userID, status string) ([]*db.Task, error)
	UpdateTask(ctx context.Context, userID, taskID string, req UpdateTaskRequest) (*db.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
	GetTaskHistory(ctx context.Context, userID, taskID string) ([]*db.TaskEvent, error)
}

// NotificationService defines the primary port for notification use cases
type NotificationService interface {
	ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]*db.Notification, int, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}

// SystemService defines the primary port for system monitoring use cases
type SystemService interface {
	GetSystemStats(ctx context.Context) (*SystemStats, error)
}

// SystemStats combines host statistics with store row counts
type SystemStats struct {
	Host          *system.HostStats `json:"host"`
	Users         int               `json:"users"`
	Tasks         int               `json:"tasks"`
	Sessions      int               `json:"sessions"`
	Notifications int               `json:"notifications"`
	UptimeSeconds float64           `json:"uptime_seconds"`
}

// ============================================================================
// Secondary Ports (External Collaborators)
// ============================================================================

// CredentialHasher abstracts the password hashing dependency; failures are
// surfaced as credential service errors
type CredentialHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenManager issues and verifies bearer tokens bound to sessions
type TokenManager interface {
	Issue(userID, sessionID string) (string, error)
	Parse(token string) (userID, sessionID string, err error)
}
