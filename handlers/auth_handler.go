package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-manager/helper"
	"prompt-manager/models"
	"prompt-manager/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindingError(c, err)
		return
	}

	user, err := h.authService.Register(req)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindingError(c, err)
		return
	}

	token, err := h.authService.Login(req)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := c.Get("user_id")

	user, err := h.authService.GetUserByID(userID.(uint))
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
