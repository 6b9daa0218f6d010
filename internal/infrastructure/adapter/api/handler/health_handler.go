package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// DatabaseStatus reports on the database connection
type DatabaseStatus interface {
	Ping(ctx context.Context) error
	PoolMetrics() database.ConnectionPoolMetrics
}

// HealthHandler reports liveness and database reachability
type HealthHandler struct {
	db      DatabaseStatus
	timeout time.Duration
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db DatabaseStatus) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "pool": h.db.PoolMetrics()})
}
