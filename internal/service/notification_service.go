package service

import (
	"context"
	"log/slog"

	"github.com/taskhive/internal/db"
	"github.com/taskhive/internal/domain"
)

// notificationService implements the NotificationService interface
type notificationService struct {
	database *db.DB
	logger   *slog.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(database *db.DB, logger *slog.Logger) domain.NotificationService {
	return &notificationService{
		database: database,
		logger:   logger,
	}
}

// ListNotifications retrieves a user's notifications along with the unread count
func (s *notificationService) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]*db.Notification, int, error) {
	notifications, err := s.database.ListNotificationsByUser(ctx, userID, unreadOnly)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list notifications", "userID", userID, "error", err)
		return nil, 0, domain.WrapDatabaseOperation("list notifications", err)
	}

	unread, err := s.database.CountUnreadNotifications(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to count unread notifications", "userID", userID, "error", err)
		return nil, 0, domain.WrapDatabaseOperation("count unread notifications", err)
	}

	return notifications, unread, nil
}

// MarkRead marks one notification as read; notifications owned by other
// users surface as not found
func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	updated, err := s.database.MarkNotificationRead(ctx, notificationID, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to mark notification read", "notificationID", notificationID, "error", err)
		return domain.WrapDatabaseOperation("mark notification read", err)
	}
	if updated == 0 {
		return domain.WrapNotificationNotFound(notificationID, nil)
	}
	return nil
}

// MarkAllRead marks all of a user's notifications as read and returns the
// number updated
func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	updated, err := s.database.MarkAllNotificationsRead(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to mark notifications read", "userID", userID, "error", err)
		return 0, domain.WrapDatabaseOperation("mark notifications read", err)
	}
	return updated, nil
}
