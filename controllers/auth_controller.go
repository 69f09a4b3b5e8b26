package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"monipee-hotel/middleware"
	"monipee-hotel/services"
	"monipee-hotel/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type forgotPayload struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var p loginPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	sess, err := ac.Auth.Login(c.Request.Context(), strings.TrimSpace(p.Email), p.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, sess)
}

// POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	in.Email = strings.TrimSpace(in.Email)
	sess, err := ac.Auth.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, sess)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.Auth.Logout(c.Request.Context(), middleware.SessionToken(c)); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"loggedOut": true})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, currentUser(c))
}

// PATCH /api/auth/me
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	var in services.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	u, err := ac.Auth.UpdateProfile(c.Request.Context(), currentUser(c).ID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, u)
}

// POST /api/auth/forgot-password
func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var p forgotPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	msg, err := ac.Auth.ForgotPassword(c.Request.Context(), strings.TrimSpace(p.Email))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": msg})
}

// POST /api/auth/reset-password
func (ac *AuthController) ResetPassword(c *gin.Context) {
	var p resetPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ac.Auth.ResetPassword(c.Request.Context(), p.Password, p.Token, strings.TrimSpace(p.Email)); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Password has been reset. You can now sign in."})
}
