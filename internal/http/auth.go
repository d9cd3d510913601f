package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhive/internal/domain"
)

// SignupRequest represents a signup request
type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// signup registers a new account
func (s *Server) signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(c.Request.Context(), "invalid signup request", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	user, token, err := s.authService.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case domain.IsInvalidInputError(err):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid signup data", Details: err.Error()})
		case domain.IsDuplicateEmailError(err):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email is already registered"})
		case domain.IsCredentialServiceError(err):
			slog.ErrorContext(c.Request.Context(), "credential service failure on signup", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Authentication service error"})
		default:
			slog.ErrorContext(c.Request.Context(), "signup failed", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected error occurred"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"user":    user,
		"token":   token,
	})
}

// login authenticates an existing account
func (s *Server) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(c.Request.Context(), "invalid login request", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	user, token, err := s.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if domain.IsInvalidCredentialsError(err) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		slog.ErrorContext(c.Request.Context(), "login failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome back!",
		"user":    user,
		"token":   token,
	})
}

// logout destroys the caller's sessions
func (s *Server) logout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	if err := s.authService.Logout(c.Request.Context(), userID); err != nil {
		slog.ErrorContext(c.Request.Context(), "logout failed", "userID", userID, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "You have been logged out successfully"})
}

// me returns the authenticated user's profile
func (s *Server) me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	user, err := s.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		slog.ErrorContext(c.Request.Context(), "failed to load current user", "userID", userID, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected error occurred"})
		return
	}

	c.JSON(http.StatusOK, user)
}
