package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// getSystemStats returns host statistics and store row counts
func (s *Server) getSystemStats(c *gin.Context) {
	stats, err := s.systemService.GetSystemStats(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to collect system stats", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to collect system stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
