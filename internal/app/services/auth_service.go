package services

import (
	"context"
	"errors"

	"github.com/scop/resourcehub/internal/app/models"
	"github.com/scop/resourcehub/internal/pkg/apperrors"
	"github.com/scop/resourcehub/internal/pkg/auth"
	"github.com/scop/resourcehub/internal/pkg/logger"
)

type authService struct {
	users UserStore
}

// NewAuthService creates the credential verification service
func NewAuthService(users UserStore) AuthService {
	return &authService{users: users}
}

// Login looks the user up by username and verifies the bcrypt hash. An
// unknown username and a wrong password both come back as
// ErrInvalidCredentials so the response does not leak which part failed.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Warn().Str("username", username).Msg("Login attempt for unknown username")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		logger.Warn().Str("username", username).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	logger.Info().Str("username", username).Int64("userID", user.ID).Msg("Admin logged in")
	return user, nil
}
