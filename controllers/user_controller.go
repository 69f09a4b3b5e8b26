package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"monipee-hotel/services"
	"monipee-hotel/utils"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Users: svc}
}

// GET /api/admin/users
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.Users.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

// GET /api/admin/users/:id
func (uc *UserController) Get(c *gin.Context) {
	u, err := uc.Users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, u)
}

// GET /api/admin/customers
func (uc *UserController) Customers(c *gin.Context) {
	list, err := uc.Users.Customers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}
