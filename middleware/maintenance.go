package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"monipee-hotel/models"
	"monipee-hotel/utils"
)

type SettingsReader interface {
	Get(ctx context.Context) (models.HotelSettings, error)
}

// Maintenance answers 503 while the hotel is in maintenance mode. Admins pass through.
func Maintenance(settings SettingsReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := settings.Get(c.Request.Context())
		if err != nil {
			logrus.WithError(err).Warn("maintenance check skipped")
			c.Next()
			return
		}
		if s.MaintenanceMode {
			if u, ok := CurrentUser(c); ok && u.IsAdmin() {
				c.Next()
				return
			}
			utils.JSONError(c, http.StatusServiceUnavailable, "The hotel is undergoing maintenance. Please try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
