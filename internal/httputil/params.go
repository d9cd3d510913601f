package httputil

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ValidateAndGetTaskID validates and returns the task ID from the URL parameter
func ValidateAndGetTaskID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("invalid task ID")
	}
	return id, nil
}

// ValidateAndGetNotificationID validates and returns the notification ID from the URL parameter
func ValidateAndGetNotificationID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("invalid notification ID")
	}
	return id, nil
}
