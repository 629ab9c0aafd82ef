package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sebasr/clinic-service/internal/service"
)

// AccountHandler handles registration and login
type AccountHandler struct {
	accounts *service.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accounts *service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Register handles account registration
// POST /api/v1/auth/register, POST /register
func (h *AccountHandler) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	if err := h.accounts.Register(c.Request.Context(), input); err != nil {
		respondError(c, err, "Insert error")
		return
	}

	respondOK(c, "Register success", nil)
}

// Login handles login by identity number and password
// POST /api/v1/auth/login, POST /login
func (h *AccountHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	result, err := h.accounts.Login(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Fail to login")
		return
	}

	extra := gin.H{
		"user": result.Profile,
		"role": result.Profile.Role,
	}
	if result.Token != "" {
		extra["token"] = result.Token
		extra["expiresAt"] = result.ExpiresAt
	}

	respondOK(c, "Login success", extra)
}
