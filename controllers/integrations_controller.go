package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"monipee-hotel/utils"
)

// IntegrationsController exposes third-party widget ids to the frontend.
type IntegrationsController struct {
	TawkPropertyID string
	TawkWidgetID   string
}

func NewIntegrationsController(tawkPropertyID, tawkWidgetID string) *IntegrationsController {
	return &IntegrationsController{TawkPropertyID: tawkPropertyID, TawkWidgetID: tawkWidgetID}
}

// GET /api/integrations
func (ic *IntegrationsController) Get(c *gin.Context) {
	if ic.TawkPropertyID == "" || ic.TawkWidgetID == "" {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"tawk": gin.H{"enabled": false}})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"tawk": gin.H{
		"enabled":    true,
		"propertyId": ic.TawkPropertyID,
		"widgetId":   ic.TawkWidgetID,
	}})
}
