package handlers

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hiyashree/birthday-project/middleware"
	"github.com/Hiyashree/birthday-project/models"
	"github.com/Hiyashree/birthday-project/store"
	"github.com/Hiyashree/birthday-project/utils"
)

type UserHandler struct {
	accounts *store.AccountStore
	log      *zap.SugaredLogger
}

func NewUserHandler(accounts *store.AccountStore, log *zap.SugaredLogger) *UserHandler {
	return &UserHandler{accounts: accounts, log: log}
}

func (h *UserHandler) SearchUsers(c *gin.Context) {
	query := c.Query("q")

	users, err := h.accounts.Search(c.Request.Context(), query)
	if err != nil {
		h.log.Errorw("user search failed", "error", err)
		utils.InternalError(c, "Error searching users")
		return
	}

	results := []models.UserProfile{}
	for i := range users {
		results = append(results, *users[i].ToProfile())
	}

	utils.Success(c, results)
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.accounts.FindByID(c.Request.Context(), userID)
	if errors.Is(err, sql.ErrNoRows) {
		utils.NotFound(c, "User not found")
		return
	}
	if err != nil {
		h.log.Errorw("current user lookup failed", "error", err)
		utils.InternalError(c, "Error fetching user")
		return
	}

	utils.Success(c, user)
}
