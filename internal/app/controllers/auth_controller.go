// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/scop/resourcehub/internal/app/models/dto"
	"github.com/scop/resourcehub/internal/app/services"
	"github.com/scop/resourcehub/internal/middleware"
)

// AuthController handles the session login lifecycle
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login verifies credentials and establishes the admin session cookie.
// The dashboard posts form fields; JSON bodies are accepted too.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("username and password are required"))
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	session := sessions.Default(ctx)
	session.Set(middleware.SessionKeyUserID, user.ID)
	session.Set(middleware.SessionKeyUsername, user.Username)
	session.Set(middleware.SessionKeyRole, user.Role)
	if err := session.Save(); err != nil {
		c.logger.Error().Err(err).Msg("Failed to save session")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error."))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		User:    dto.NewUserInfo(user),
	})
}

// Me reports whether the request carries a live session, and for whom.
// It always answers 200 so the dashboard can probe without tripping
// error handling.
func (c *AuthController) Me(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusOK, dto.MeResponse{Authenticated: false})
		return
	}
	ctx.JSON(http.StatusOK, dto.MeResponse{Authenticated: true, User: user})
}

// Logout clears the session. Logging out without a session is not an error.
func (c *AuthController) Logout(ctx *gin.Context) {
	session := sessions.Default(ctx)
	session.Clear()
	if err := session.Save(); err != nil {
		c.logger.Error().Err(err).Msg("Failed to clear session")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error."))
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
