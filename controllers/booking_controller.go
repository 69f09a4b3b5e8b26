package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"monipee-hotel/models"
	"monipee-hotel/services"
	"monipee-hotel/utils"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Bookings: svc}
}

type statusPayload struct {
	Status string `json:"status" binding:"required,bookingstatus"`
}

// GET /api/booking/quote?room=&checkIn=&checkOut=&guests=&roomCount=&promo=
func (bc *BookingController) Quote(c *gin.Context) {
	var req services.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	q, err := bc.Bookings.Quote(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, q)
}

// POST /api/booking/promo
func (bc *BookingController) ValidatePromo(c *gin.Context) {
	var req services.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := bc.Bookings.ValidatePromo(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// POST /api/bookings
func (bc *BookingController) Create(c *gin.Context) {
	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	b, err := bc.Bookings.CreateBooking(c.Request.Context(), currentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, b)
}

// GET /api/bookings
func (bc *BookingController) Mine(c *gin.Context) {
	list, err := bc.Bookings.ListByUser(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// POST /api/bookings/:id/cancel
func (bc *BookingController) Cancel(c *gin.Context) {
	b, err := bc.Bookings.Cancel(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, b)
}

// GET /api/admin/bookings
func (bc *BookingController) List(c *gin.Context) {
	list, err := bc.Bookings.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if status := c.Query("status"); status != "" {
		filtered := make([]models.Booking, 0, len(list))
		for _, b := range list {
			if b.Status == status {
				filtered = append(filtered, b)
			}
		}
		list = filtered
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GET /api/admin/bookings/:id
func (bc *BookingController) Get(c *gin.Context) {
	b, err := bc.Bookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, b)
}

// PATCH /api/admin/bookings/:id/status
func (bc *BookingController) SetStatus(c *gin.Context) {
	var p statusPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	b, err := bc.Bookings.SetStatus(c.Request.Context(), c.Param("id"), p.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, b)
}

// PATCH /api/admin/bookings/:id
func (bc *BookingController) Update(c *gin.Context) {
	var patch models.BookingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	b, err := bc.Bookings.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, b)
}
