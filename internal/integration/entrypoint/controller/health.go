// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthController handles health check endpoints.
type HealthController struct {
	db HealthChecker
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(db HealthChecker) *HealthController {
	return &HealthController{db: db}
}

// Check handles GET /health requests.
// It returns 503 when the database does not answer a ping.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.db.HealthCheck(ctx); err != nil {
		slog.Warn("Health check failed", "error", err)
		response.Status = "unhealthy"
		response.Database = "disconnected"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
