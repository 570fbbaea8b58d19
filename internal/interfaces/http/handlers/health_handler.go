package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bank-backoffice.backend/pkg/logger"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves GET /health
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler creates a health handler. db may be nil.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Health reports service liveness and database reachability
func (h *HealthHandler) Health(c *gin.Context) {
	status, database := http.StatusOK, "up"

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			logger.Error(c.Request.Context(), "Database health check failed", zap.Error(err))
			status, database = http.StatusServiceUnavailable, "down"
		}
	}

	c.JSON(status, gin.H{
		"status":    http.StatusText(status),
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
