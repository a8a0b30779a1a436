// Package middleware provides the HTTP middleware chain
package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/scop/resourcehub/internal/app/models/dto"
)

// Session value keys.
const (
	SessionKeyUserID   = "user_id"
	SessionKeyUsername = "username"
	SessionKeyRole     = "role"
)

// currentUserKey is the gin context key the resolved user is stored under.
const currentUserKey = "currentUser"

// SessionUser resolves the session cookie into the request context. It never
// rejects a request; handlers that need an admin check CurrentUser themselves.
func SessionUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		userID, ok := session.Get(SessionKeyUserID).(int64)
		if !ok {
			c.Next()
			return
		}
		username, _ := session.Get(SessionKeyUsername).(string)
		role, _ := session.Get(SessionKeyRole).(string)

		c.Set(currentUserKey, &dto.UserInfo{
			ID:       userID,
			Username: username,
			Role:     role,
		})
		c.Next()
	}
}

// CurrentUser returns the session user resolved by SessionUser, or false
// when the request carries no valid session.
func CurrentUser(c *gin.Context) (*dto.UserInfo, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*dto.UserInfo)
	return user, ok
}
