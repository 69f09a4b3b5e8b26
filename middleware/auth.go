package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"monipee-hotel/models"
	"monipee-hotel/services"
	"monipee-hotel/utils"
)

const (
	userKey  = "user"
	tokenKey = "session_token"
)

// SessionResolver maps a bearer token to the signed-in user.
type SessionResolver interface {
	CurrentUser(ctx context.Context, token string) (models.User, error)
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// RequireAuth rejects requests without a live session and stores the user in the context.
func RequireAuth(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		user, err := sessions.CurrentUser(c.Request.Context(), token)
		if err != nil {
			if !services.IsAuthError(err) {
				logrus.WithError(err).Error("session lookup failed")
				utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
				c.Abort()
				return
			}
			utils.JSONError(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}
		c.Set(userKey, user)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, services.ErrUnauthenticated.Error())
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			utils.JSONError(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}

func SessionToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
