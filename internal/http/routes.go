package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// Health check endpoint (no auth required)
	s.engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "taskhive",
		})
	})

	api := s.engine.Group("/api/v1")

	// Auth routes; signup and login are open, the rest require a token
	auth := api.Group("/auth")
	{
		auth.POST("/signup", s.signup)
		auth.POST("/login", s.login)
		auth.POST("/logout", s.requireAuth(), s.logout)
		auth.GET("/me", s.requireAuth(), s.me)
	}

	// Task routes - all protected by authentication
	tasks := api.Group("/tasks")
	tasks.Use(s.requireAuth())
	{
		tasks.POST("", s.createTask)
		tasks.GET("", s.listTasks)
		tasks.GET("/:id", s.getTask)
		tasks.PUT("/:id", s.updateTask)
		tasks.DELETE("/:id", s.deleteTask)
		tasks.GET("/:id/history", s.getTaskHistory)
	}

	// Notification routes - all protected by authentication
	notifications := api.Group("/notifications")
	notifications.Use(s.requireAuth())
	{
		notifications.GET("", s.listNotifications)
		notifications.POST("/:id/read", s.markNotificationRead)
		notifications.POST("/read-all", s.markAllNotificationsRead)
	}

	// System routes - protected by authentication
	system := api.Group("/system")
	system.Use(s.requireAuth())
	{
		system.GET("/stats", s.getSystemStats)
	}
}
