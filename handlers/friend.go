package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hiyashree/birthday-project/friendship"
	"github.com/Hiyashree/birthday-project/models"
	"github.com/Hiyashree/birthday-project/utils"
)

// FriendWorkflow is the slice of the workflow engine the HTTP layer needs.
type FriendWorkflow interface {
	SendRequest(ctx context.Context, fromEmail, toEmail string) error
	ListIncoming(ctx context.Context, email string) ([]models.FriendRequestWithSender, error)
	Respond(ctx context.Context, requestID, action string) error
	ListFriends(ctx context.Context, email string) ([]models.UserProfile, error)
}

type FriendHandler struct {
	workflow FriendWorkflow
	log      *zap.SugaredLogger
}

func NewFriendHandler(workflow FriendWorkflow, log *zap.SugaredLogger) *FriendHandler {
	return &FriendHandler{workflow: workflow, log: log}
}

type SendFriendRequestBody struct {
	FromEmail string `json:"fromEmail" binding:"required,email"`
	ToEmail   string `json:"toEmail" binding:"required,email"`
}

type RespondBody struct {
	RequestID string `json:"requestId" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

func (h *FriendHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, friendship.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, friendship.ErrConflict), errors.Is(err, friendship.ErrInvalidOperation):
		utils.BadRequest(c, err.Error())
	default:
		h.log.Errorw(fallback, "error", err)
		utils.InternalError(c, fallback)
	}
}

func (h *FriendHandler) SendFriendRequest(c *gin.Context) {
	var body SendFriendRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.workflow.SendRequest(c.Request.Context(), body.FromEmail, body.ToEmail); err != nil {
		h.writeError(c, err, "error sending friend request")
		return
	}

	utils.Message(c, "Friend request sent")
}

func (h *FriendHandler) GetFriendRequests(c *gin.Context) {
	email := c.Query("email")

	requests, err := h.workflow.ListIncoming(c.Request.Context(), email)
	if err != nil {
		h.writeError(c, err, "error fetching friend requests")
		return
	}

	utils.Success(c, requests)
}

func (h *FriendHandler) RespondFriendRequest(c *gin.Context) {
	var body RespondBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.workflow.Respond(c.Request.Context(), body.RequestID, body.Action); err != nil {
		h.writeError(c, err, "error responding to friend request")
		return
	}

	utils.Message(c, "Friend request "+body.Action+"ed")
}

func (h *FriendHandler) GetFriends(c *gin.Context) {
	email := c.Query("email")

	friends, err := h.workflow.ListFriends(c.Request.Context(), email)
	if err != nil {
		h.writeError(c, err, "error fetching friends")
		return
	}

	utils.Success(c, friends)
}
