package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"monipee-hotel/models"
	"monipee-hotel/services"
	"monipee-hotel/utils"
)

type ContentController struct {
	Content *services.ContentService
}

func NewContentController(svc *services.ContentService) *ContentController {
	return &ContentController{Content: svc}
}

// GET /api/content/hero
func (cc *ContentController) ListHero(c *gin.Context) {
	list, err := cc.Content.ListHeroSections(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GET /api/content/hero/:id
func (cc *ContentController) GetHero(c *gin.Context) {
	h, err := cc.Content.HeroSection(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, h)
}

// PUT /api/admin/content/hero/:id
func (cc *ContentController) UpdateHero(c *gin.Context) {
	var patch models.HeroPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	h, err := cc.Content.UpdateHeroSection(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, h)
}

// GET /api/content/pages/:id
func (cc *ContentController) GetPage(c *gin.Context) {
	p, err := cc.Content.PageContent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, p)
}

// PUT /api/admin/content/pages/:id
func (cc *ContentController) UpdatePage(c *gin.Context) {
	var patch models.PageContentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	p, err := cc.Content.UpdatePageContent(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, p)
}
