package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"monipee-hotel/services"
	"monipee-hotel/utils"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: svc}
}

// GET /api/admin/dashboard
func (dc *DashboardController) Stats(c *gin.Context) {
	stats, err := dc.Dashboard.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}
