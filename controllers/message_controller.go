package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"monipee-hotel/services"
	"monipee-hotel/utils"
)

type MessageController struct {
	Messages *services.MessageService
}

func NewMessageController(svc *services.MessageService) *MessageController {
	return &MessageController{Messages: svc}
}

type replyPayload struct {
	Content string `json:"content"`
}

// GET /api/messages
func (mc *MessageController) Mine(c *gin.Context) {
	list, err := mc.Messages.ListByUser(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// POST /api/messages
func (mc *MessageController) Create(c *gin.Context) {
	var in services.MessageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	m, err := mc.Messages.Add(c.Request.Context(), currentUser(c).ID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, m)
}

// POST /api/messages/:id/replies
func (mc *MessageController) ReplyMine(c *gin.Context) {
	var p replyPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	m, err := mc.Messages.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if m.UserID != currentUser(c).ID {
		respondError(c, services.ErrMessageNotFound)
		return
	}
	m, err = mc.Messages.Reply(c.Request.Context(), m.ID, p.Content, false)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, m)
}

// GET /api/admin/messages
func (mc *MessageController) ListAll(c *gin.Context) {
	list, err := mc.Messages.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// POST /api/admin/messages/:id/read
func (mc *MessageController) MarkRead(c *gin.Context) {
	m, err := mc.Messages.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, m)
}

// POST /api/admin/messages/:id/replies
func (mc *MessageController) Reply(c *gin.Context) {
	var p replyPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	m, err := mc.Messages.Reply(c.Request.Context(), c.Param("id"), p.Content, true)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, m)
}

// PATCH /api/admin/messages/:id
func (mc *MessageController) Update(c *gin.Context) {
	var patch services.MessagePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	m, err := mc.Messages.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, m)
}
