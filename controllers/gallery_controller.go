package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"monipee-hotel/models"
	"monipee-hotel/services"
	"monipee-hotel/utils"
)

type GalleryController struct {
	Gallery *services.GalleryService
}

func NewGalleryController(svc *services.GalleryService) *GalleryController {
	return &GalleryController{Gallery: svc}
}

// GET /api/gallery?category=Rooms
func (gc *GalleryController) List(c *gin.Context) {
	images, err := gc.Gallery.ListByCategory(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, images)
}

// POST /api/admin/gallery
func (gc *GalleryController) Create(c *gin.Context) {
	var img models.GalleryImage
	if err := c.ShouldBindJSON(&img); err != nil {
		badRequest(c, err)
		return
	}
	created, err := gc.Gallery.Add(c.Request.Context(), img)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

// DELETE /api/admin/gallery/:id
func (gc *GalleryController) Delete(c *gin.Context) {
	if err := gc.Gallery.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": c.Param("id")})
}
