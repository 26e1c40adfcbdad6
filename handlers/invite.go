package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hiyashree/birthday-project/models"
	"github.com/Hiyashree/birthday-project/store"
	"github.com/Hiyashree/birthday-project/utils"
)

type InviteHandler struct {
	invites *store.InviteStore
	log     *zap.SugaredLogger
}

func NewInviteHandler(invites *store.InviteStore, log *zap.SugaredLogger) *InviteHandler {
	return &InviteHandler{invites: invites, log: log}
}

type SendInviteRequest struct {
	From    string `json:"from" binding:"required"`
	To      string `json:"to" binding:"required"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Place   string `json:"place"`
	Message string `json:"message"`
}

// SendInvite saves the invite. Emailing the invitee stays switched off, same
// as the original deployment.
func (h *InviteHandler) SendInvite(c *gin.Context) {
	var req SendInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	invite := &models.Invite{
		From:    req.From,
		To:      req.To,
		Date:    req.Date,
		Time:    req.Time,
		Place:   req.Place,
		Message: req.Message,
	}

	if err := h.invites.Create(c.Request.Context(), invite); err != nil {
		h.log.Errorw("invite insert failed", "error", err)
		utils.InternalError(c, "Error saving invite")
		return
	}

	utils.Message(c, "Invite saved!")
}
