package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/scop/resourcehub/internal/app/models"
	"github.com/scop/resourcehub/internal/app/models/dto"
	"github.com/scop/resourcehub/internal/app/repositories"
	"github.com/scop/resourcehub/internal/app/services"
	"github.com/scop/resourcehub/internal/middleware"
)

// ResourceController handles catalog listing and the admin catalog writes
type ResourceController struct {
	resourceService services.ResourceService
	statsService    services.StatsService
	logger          zerolog.Logger
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService services.ResourceService, statsService services.StatsService, logger zerolog.Logger) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
		statsService:    statsService,
		logger:          logger,
	}
}

// ListSubjects returns the subjects of one academic year
func (c *ResourceController) ListSubjects(ctx *gin.Context) {
	yearID, err := requiredIntParam(ctx, "year_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	subjects, err := c.resourceService.ListSubjects(ctx.Request.Context(), yearID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	records := make([]dto.SubjectRecord, 0, len(subjects))
	for _, subject := range subjects {
		records = append(records, dto.SubjectRecord{ID: subject.ID, Name: subject.Name})
	}
	ctx.JSON(http.StatusOK, records)
}

// ListResources returns catalog entries matching the optional year_id,
// subject_id and resource_type query filters.
func (c *ResourceController) ListResources(ctx *gin.Context) {
	var filter repositories.ResourceFilter

	if raw, ok := ctx.GetQuery("year_id"); ok && raw != "" {
		yearID, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("year_id must be a number"))
			return
		}
		filter.YearID = &yearID
	}
	if raw, ok := ctx.GetQuery("subject_id"); ok && raw != "" {
		subjectID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("subject_id must be a number"))
			return
		}
		filter.SubjectID = &subjectID
	}
	if raw, ok := ctx.GetQuery("resource_type"); ok && raw != "" {
		resourceType := models.ResourceType(raw)
		filter.ResourceType = &resourceType
	}

	resources, err := c.resourceService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.statsService.RecordView(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.NewResourceRecords(resources))
}

// ListResourcesByYear returns every entry of one type in one year,
// regardless of subject. The question-paper pages use this.
func (c *ResourceController) ListResourcesByYear(ctx *gin.Context) {
	yearID, err := requiredIntParam(ctx, "year_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}
	rawType := ctx.Query("resource_type")
	if rawType == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("resource_type is required"))
		return
	}

	resources, err := c.resourceService.ListByYear(ctx.Request.Context(), yearID, models.ResourceType(rawType))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.statsService.RecordView(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.NewResourceRecords(resources))
}

// AdminListResources returns the full catalog for the dashboard tables
func (c *ResourceController) AdminListResources(ctx *gin.Context) {
	resources, err := c.resourceService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewResourceRecords(resources))
}

// CreateResource handles the multipart admin upload form
func (c *ResourceController) CreateResource(ctx *gin.Context) {
	var req dto.CreateResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create resource form")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid form data"))
		return
	}

	file, err := formFile(ctx, "file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid file upload"))
		return
	}
	thumbnail, err := formFile(ctx, "thumbnail")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid thumbnail upload"))
		return
	}

	id, err := c.resourceService.Create(ctx.Request.Context(), &req, file, thumbnail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("resourceID", id).Str("type", req.ResourceType).Msg("Resource created")
	ctx.JSON(http.StatusOK, dto.CreateResourceResponse{Success: true, ID: id})
}

// DeleteResource removes one catalog entry by id
func (c *ResourceController) DeleteResource(ctx *gin.Context) {
	var req dto.DeleteResourceRequest
	if err := ctx.ShouldBind(&req); err != nil || req.ResourceID <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("resource_id is required"))
		return
	}

	if err := c.resourceService.Delete(ctx.Request.Context(), req.ResourceID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("resourceID", req.ResourceID).Msg("Resource deleted")
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// requiredIntParam reads a mandatory integer query parameter.
func requiredIntParam(ctx *gin.Context, name string) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, errors.New(name + " is required")
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be a number")
	}
	return value, nil
}

// formFile reads an optional multipart file part. A missing part is fine.
func formFile(ctx *gin.Context, name string) (*multipart.FileHeader, error) {
	header, err := ctx.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return header, nil
}
