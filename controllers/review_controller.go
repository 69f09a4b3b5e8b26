package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"monipee-hotel/models"
	"monipee-hotel/services"
	"monipee-hotel/utils"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: svc}
}

// GET /api/reviews
func (rc *ReviewController) ListPublished(c *gin.Context) {
	list, err := rc.Reviews.List(c.Request.Context(), true)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GET /api/reviews/summary
func (rc *ReviewController) Summary(c *gin.Context) {
	s, err := rc.Reviews.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, s)
}

// GET /api/admin/reviews
func (rc *ReviewController) ListAll(c *gin.Context) {
	list, err := rc.Reviews.List(c.Request.Context(), false)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// POST /api/admin/reviews
func (rc *ReviewController) Create(c *gin.Context) {
	var in services.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	r, err := rc.Reviews.Add(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, r)
}

// PATCH /api/admin/reviews/:id
func (rc *ReviewController) Update(c *gin.Context) {
	var patch models.ReviewPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	r, err := rc.Reviews.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, r)
}

// DELETE /api/admin/reviews/:id
func (rc *ReviewController) Delete(c *gin.Context) {
	if err := rc.Reviews.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": c.Param("id")})
}
