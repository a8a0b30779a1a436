package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/scop/resourcehub/internal/app/models/dto"
	"github.com/scop/resourcehub/internal/app/services"
	"github.com/scop/resourcehub/internal/middleware"
)

// PageController handles the editable info pages
type PageController struct {
	pageService  services.PageService
	statsService services.StatsService
	logger       zerolog.Logger
}

// NewPageController creates a new PageController
func NewPageController(pageService services.PageService, statsService services.StatsService, logger zerolog.Logger) *PageController {
	return &PageController{
		pageService:  pageService,
		statsService: statsService,
		logger:       logger,
	}
}

// GetContent returns the stored HTML for a page, empty when never edited
func (c *PageController) GetContent(ctx *gin.Context) {
	slug := ctx.Query("slug")
	if slug == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("slug is required"))
		return
	}

	html, err := c.pageService.Get(ctx.Request.Context(), slug)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.statsService.RecordView(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.PageContentResponse{HTML: html})
}

// SetContent stores new HTML for a page
func (c *PageController) SetContent(ctx *gin.Context) {
	var req dto.SetPageContentRequest
	if err := ctx.ShouldBind(&req); err != nil || req.Slug == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("slug is required"))
		return
	}

	if err := c.pageService.Set(ctx.Request.Context(), req.Slug, req.HTML); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("page", req.Slug).Msg("Page content updated")
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
