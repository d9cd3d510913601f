package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhive/internal/domain"
	"github.com/taskhive/internal/httputil"
)

// createTask creates a new task for the authenticated user
func (s *Server) createTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req domain.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(c.Request.Context(), "invalid create task request", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	task, err := s.taskService.CreateTask(c.Request.Context(), userID, req)
	if err != nil {
		s.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// listTasks returns the authenticated user's tasks, optionally filtered by status
func (s *Server) listTasks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	tasks, err := s.taskService.ListTasks(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		s.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"count": len(tasks),
	})
}

// getTask returns a single task
func (s *Server) getTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	taskID, err := httputil.ValidateAndGetTaskID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := s.taskService.GetTask(c.Request.Context(), userID, taskID)
	if err != nil {
		s.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// updateTask applies a partial update to a task
func (s *Server) updateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	taskID, err := httputil.ValidateAndGetTaskID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var req domain.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(c.Request.Context(), "invalid update task request", "taskID", taskID, "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	task, err := s.taskService.UpdateTask(c.Request.Context(), userID, taskID, req)
	if err != nil {
		s.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// deleteTask deletes a task
func (s *Server) deleteTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	taskID, err := httputil.ValidateAndGetTaskID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := s.taskService.DeleteTask(c.Request.Context(), userID, taskID); err != nil {
		s.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// getTaskHistory returns a task's change history
func (s *Server) getTaskHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	taskID, err := httputil.ValidateAndGetTaskID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	events, err := s.taskService.GetTaskHistory(c.Request.Context(), userID, taskID)
	if err != nil {
		s.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

// respondTaskError maps task service errors to status codes
func (s *Server) respondTaskError(c *gin.Context, err error) {
	switch {
	case domain.IsInvalidInputError(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid task data", Details: err.Error()})
	case domain.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
	default:
		slog.ErrorContext(c.Request.Context(), "task operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected error occurred"})
	}
}
