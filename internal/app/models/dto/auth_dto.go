package dto

import "github.com/scop/resourcehub/internal/app/models"

// LoginRequest carries admin_login credentials. The dashboard posts JSON;
// form encoding is accepted for compatibility with the login page.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// UserInfo is the session user summary returned by admin_login and admin_me.
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// NewUserInfo builds a UserInfo from a user record.
func NewUserInfo(user *models.User) UserInfo {
	return UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}

// LoginResponse is returned on successful admin_login.
type LoginResponse struct {
	Success bool     `json:"success"`
	User    UserInfo `json:"user"`
}

// MeResponse reports session state for admin_me. User is omitted when the
// session is not authenticated.
type MeResponse struct {
	Authenticated bool      `json:"authenticated"`
	User          *UserInfo `json:"user,omitempty"`
}

// SuccessResponse is the generic {success:true} acknowledgement.
type SuccessResponse struct {
	Success bool `json:"success"`
}
