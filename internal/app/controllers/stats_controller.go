package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/scop/resourcehub/internal/app/services"
	"github.com/scop/resourcehub/internal/middleware"
)

// StatsController serves the dashboard overview numbers
type StatsController struct {
	statsService services.StatsService
	logger       zerolog.Logger
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService services.StatsService, logger zerolog.Logger) *StatsController {
	return &StatsController{
		statsService: statsService,
		logger:       logger,
	}
}

// Overview returns the total resource count and the 30-day view count
func (c *StatsController) Overview(ctx *gin.Context) {
	stats, err := c.statsService.Overview(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
