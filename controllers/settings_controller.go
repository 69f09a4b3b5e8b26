package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"monipee-hotel/models"
	"monipee-hotel/services"
	"monipee-hotel/utils"
)

type SettingsController struct {
	Settings *services.SettingsService
}

func NewSettingsController(svc *services.SettingsService) *SettingsController {
	return &SettingsController{Settings: svc}
}

// GET /api/settings
func (sc *SettingsController) Get(c *gin.Context) {
	s, err := sc.Settings.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, s)
}

// PUT /api/admin/settings
func (sc *SettingsController) Update(c *gin.Context) {
	var patch models.HotelSettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	s, err := sc.Settings.Update(c.Request.Context(), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, s)
}
