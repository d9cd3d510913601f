package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const contextUserIDKey = "userID"

// requireAuth resolves the bearer token to a user ID and aborts with 401
// when the token is missing, invalid, expired, or revoked
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.Request)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
			return
		}

		userID, err := s.authService.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "request authentication failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
			return
		}

		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}

// bearerToken extracts the token from the Authorization header
func bearerToken(req *http.Request) string {
	auth := req.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// currentUserID extracts the authenticated user ID from context
func currentUserID(c *gin.Context) (string, bool) {
	if value, exists := c.Get(contextUserIDKey); exists {
		if id, ok := value.(string); ok && id != "" {
			return id, true
		}
	}
	return "", false
}
