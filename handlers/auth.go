package handlers

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Hiyashree/birthday-project/models"
	"github.com/Hiyashree/birthday-project/store"
	"github.com/Hiyashree/birthday-project/utils"
)

type AuthHandler struct {
	accounts  *store.AccountStore
	jwtSecret string
	log       *zap.SugaredLogger
}

func NewAuthHandler(accounts *store.AccountStore, jwtSecret string, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{accounts: accounts, jwtSecret: jwtSecret, log: log}
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Birthday string `json:"birthday"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	exists, err := h.accounts.EmailExists(c.Request.Context(), req.Email)
	if err != nil {
		h.log.Errorw("signup lookup failed", "error", err)
		utils.InternalError(c, "Signup failed")
		return
	}
	if exists {
		utils.BadRequest(c, "User already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.InternalError(c, "Signup failed")
		return
	}

	user := &models.User{
		ID:       utils.GenerateUUID(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Birthday: req.Birthday,
	}

	if err := h.accounts.Create(c.Request.Context(), user); err != nil {
		h.log.Errorw("signup insert failed", "error", err)
		utils.InternalError(c, "Signup failed")
		return
	}

	utils.Created(c, "User created successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	user, err := h.accounts.FindByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, sql.ErrNoRows) {
		utils.NotFound(c, "User not found")
		return
	}
	if err != nil {
		h.log.Errorw("login lookup failed", "error", err)
		utils.InternalError(c, "Login failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.BadRequest(c, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(h.jwtSecret, user.ID)
	if err != nil {
		utils.InternalError(c, "Login failed")
		return
	}

	utils.Success(c, gin.H{
		"token": token,
		"user":  user.ToProfile(),
	})
}
