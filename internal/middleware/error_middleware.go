package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scop/resourcehub/internal/app/models/dto"
	"github.com/scop/resourcehub/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the wire error shape. Validation
// messages are written by us and safe to return verbatim; everything else
// gets a generic message so internals never leak.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid credentials."))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.MessageUnauthorized))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found."))
	case errors.Is(err, apperrors.ErrStorageFailed):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to store uploaded file."))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error."))
	}
}
