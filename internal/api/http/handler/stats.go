package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lynossweets/storefront-server/internal/logger"
	"github.com/lynossweets/storefront-server/internal/model"
)

// StatsService defines the dashboard aggregate operation.
type StatsService interface {
	Get(ctx context.Context) (model.Stats, error)
}

// Stats handles the back-office dashboard endpoint.
type Stats struct {
	statsService StatsService
	logger       *logger.Logger
}

// NewStats creates a new Stats handler.
func NewStats(statsService StatsService, logger *logger.Logger) *Stats {
	return &Stats{
		statsService: statsService,
		logger:       logger,
	}
}

// Get returns the dashboard aggregate.
func (h *Stats) Get(c *gin.Context) {
	stats, err := h.statsService.Get(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
