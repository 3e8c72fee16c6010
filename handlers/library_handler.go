package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-manager/helper"
	"prompt-manager/models"
	"prompt-manager/services"
)

type LibraryHandler struct {
	libraryService services.LibraryService
}

func NewLibraryHandler(libraryService services.LibraryService) *LibraryHandler {
	return &LibraryHandler{libraryService: libraryService}
}

func (h *LibraryHandler) Export(c *gin.Context) {
	userID, _ := c.Get("user_id")

	payload, err := h.libraryService.Export(userID.(uint))
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}

func (h *LibraryHandler) Import(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var payload models.ImportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		helper.SendBindingError(c, err)
		return
	}

	result, err := h.libraryService.Import(payload, userID.(uint))
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
