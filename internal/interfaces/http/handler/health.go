package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shoplytics/backend/internal/infrastructure/persistence"
	"github.com/shoplytics/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// DatabaseProbe reports database reachability and pool usage
type DatabaseProbe interface {
	Ping(ctx context.Context) error
	Stats() (persistence.ConnectionStats, error)
}

// HealthHandler serves the liveness probe
type HealthHandler struct {
	BaseHandler
	db      DatabaseProbe
	timeout time.Duration
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(base BaseHandler, db DatabaseProbe) *HealthHandler {
	return &HealthHandler{
		BaseHandler: base,
		db:          db,
		timeout:     2 * time.Second,
	}
}

// Health godoc
// @ID           getHealth
// @Summary      Health check
// @Description  Reports whether the service and its database are reachable, with connection pool usage
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.HealthResponse
// @Failure      503 {object} dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger(c).Error("Database health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "unavailable",
			Database: "unreachable",
		})
		return
	}

	resp := dto.HealthResponse{
		Status:   "ok",
		Database: "ok",
	}
	if stats, err := h.db.Stats(); err != nil {
		h.logger(c).Warn("Failed to read connection pool stats", zap.Error(err))
	} else {
		resp.Pool = &dto.PoolStats{
			MaxOpen:      stats.MaxOpenConnections,
			Open:         stats.OpenConnections,
			InUse:        stats.InUse,
			Idle:         stats.Idle,
			WaitCount:    stats.WaitCount,
			WaitDuration: stats.WaitDuration.String(),
		}
	}

	c.JSON(http.StatusOK, resp)
}
