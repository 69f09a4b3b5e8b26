package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"monipee-hotel/models"
	"monipee-hotel/services"
	"monipee-hotel/utils"
)

type RoomController struct {
	Rooms   *services.RoomService
	Reviews *services.RoomReviewService
}

func NewRoomController(rooms *services.RoomService, reviews *services.RoomReviewService) *RoomController {
	return &RoomController{Rooms: rooms, Reviews: reviews}
}

type roomReviewStatusPayload struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// GET /api/rooms
func (rc *RoomController) List(c *gin.Context) {
	rooms, err := rc.Rooms.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GET /api/rooms/:id
func (rc *RoomController) Get(c *gin.Context) {
	room, err := rc.Rooms.Lookup(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// POST /api/admin/rooms
func (rc *RoomController) Create(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		badRequest(c, err)
		return
	}
	created, err := rc.Rooms.Add(c.Request.Context(), room)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

// PATCH /api/admin/rooms/:id
func (rc *RoomController) Update(c *gin.Context) {
	var patch models.RoomPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	room, err := rc.Rooms.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DELETE /api/admin/rooms/:id
func (rc *RoomController) Delete(c *gin.Context) {
	if err := rc.Rooms.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

// GET /api/rooms/:id/reviews
func (rc *RoomController) ListReviews(c *gin.Context) {
	list, err := rc.Reviews.ListForRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// POST /api/rooms/:id/reviews
func (rc *RoomController) AddReview(c *gin.Context) {
	var in services.RoomReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	if _, err := rc.Rooms.Lookup(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	review, err := rc.Reviews.Add(c.Request.Context(), c.Param("id"), currentUser(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, review)
}

// GET /api/admin/room-reviews
func (rc *RoomController) ListAllReviews(c *gin.Context) {
	list, err := rc.Reviews.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// PATCH /api/admin/room-reviews/:id
func (rc *RoomController) SetReviewStatus(c *gin.Context) {
	var p roomReviewStatusPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	review, err := rc.Reviews.SetStatus(c.Request.Context(), c.Param("id"), p.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, review)
}
