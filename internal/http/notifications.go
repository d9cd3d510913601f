package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhive/internal/domain"
	"github.com/taskhive/internal/httputil"
)

// listNotifications returns the authenticated user's notifications
func (s *Server) listNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	unreadOnly := c.Query("unread") == "true"

	notifications, unread, err := s.notificationService.ListNotifications(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to list notifications", "userID", userID, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// markNotificationRead marks one notification as read
func (s *Server) markNotificationRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	notificationID, err := httputil.ValidateAndGetNotificationID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := s.notificationService.MarkRead(c.Request.Context(), userID, notificationID); err != nil {
		if domain.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Notification not found"})
			return
		}
		slog.ErrorContext(c.Request.Context(), "failed to mark notification read", "notificationID", notificationID, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// markAllNotificationsRead marks all of the user's notifications as read
func (s *Server) markAllNotificationsRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	updated, err := s.notificationService.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to mark notifications read", "userID", userID, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "All notifications marked as read",
		"updated": updated,
	})
}
