package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"monipee-hotel/middleware"
	"monipee-hotel/models"
	"monipee-hotel/pricing"
	"monipee-hotel/services"
	"monipee-hotel/utils"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{services.ErrInvalidCredentials, http.StatusUnauthorized},
	{services.ErrUnauthenticated, http.StatusUnauthorized},
	{services.ErrSessionExpired, http.StatusUnauthorized},
	{services.ErrEmailTaken, http.StatusConflict},
	{services.ErrUserNotFound, http.StatusNotFound},
	{services.ErrInvalidResetToken, http.StatusBadRequest},
	{services.ErrResetTokenExpired, http.StatusBadRequest},
	{services.ErrPasswordTooLong, http.StatusBadRequest},

	{services.ErrBookingNotFound, http.StatusNotFound},
	{services.ErrAlreadyCancelled, http.StatusConflict},
	{services.ErrInvalidStatus, http.StatusBadRequest},
	{services.ErrIncompleteGuestDetails, http.StatusBadRequest},
	{services.ErrBookingsDisabled, http.StatusForbidden},
	{services.ErrInvalidStay, http.StatusBadRequest},
	{services.ErrInvalidDates, http.StatusBadRequest},

	{services.ErrRoomNotFound, http.StatusNotFound},
	{services.ErrRoomExists, http.StatusConflict},
	{services.ErrRoomNameRequired, http.StatusBadRequest},
	{services.ErrMessageNotFound, http.StatusNotFound},
	{services.ErrEmptyMessage, http.StatusBadRequest},
	{services.ErrImageNotFound, http.StatusNotFound},

	{services.ErrReviewNotFound, http.StatusNotFound},
	{services.ErrCommentRequired, http.StatusBadRequest},
	{services.ErrRatingRequired, http.StatusBadRequest},
	{services.ErrReviewsDisabled, http.StatusForbidden},
	{services.ErrInvalidReviewStatus, http.StatusBadRequest},
}

// respondError writes the JSON error envelope for err. Unknown errors are logged and hidden.
func respondError(c *gin.Context, err error) {
	var promoErr *pricing.PromoError
	if errors.As(err, &promoErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   promoErr.Message,
			"kind":    promoErr.Kind,
		})
		return
	}

	for _, m := range errorStatus {
		if errors.Is(err, m.err) {
			utils.JSONError(c, m.status, m.err.Error())
			return
		}
	}

	logrus.WithError(err).WithFields(logrus.Fields{
		"path":       c.FullPath(),
		"request_id": c.GetString(middleware.RequestIDKey),
	}).Error("request failed")
	_ = c.Error(err)
	utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
}

func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, utils.BindErrorMessage(err))
}

// currentUser is only called behind RequireAuth.
func currentUser(c *gin.Context) models.User {
	u, _ := middleware.CurrentUser(c)
	return u
}
