package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prompt-manager/helper"
	"prompt-manager/models"
	"prompt-manager/services"
)

type PromptHandler struct {
	promptService services.PromptService
}

func NewPromptHandler(promptService services.PromptService) *PromptHandler {
	return &PromptHandler{promptService: promptService}
}

func (h *PromptHandler) CreatePrompt(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindingError(c, err)
		return
	}

	prompt, err := h.promptService.Create(req, userID.(uint))
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, prompt)
}

func (h *PromptHandler) GetPrompts(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var params models.PromptListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		helper.SendBindingError(c, err)
		return
	}

	prompts, err := h.promptService.List(params, userID.(uint))
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, prompts)
}

func (h *PromptHandler) GetPrompt(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	prompt, err := h.promptService.Get(id, userID.(uint))
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, prompt)
}

func (h *PromptHandler) UpdatePrompt(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	var req models.UpdatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindingError(c, err)
		return
	}

	prompt, err := h.promptService.Update(id, req, userID.(uint))
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, prompt)
}

func (h *PromptHandler) DeletePrompt(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	if err := h.promptService.Delete(id, userID.(uint)); err != nil {
		helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PromptHandler) DuplicatePrompt(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	prompt, err := h.promptService.Duplicate(id, userID.(uint))
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, prompt)
}

func (h *PromptHandler) GetPromptVersions(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	versions, err := h.promptService.GetVersions(id, userID.(uint))
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, versions)
}

// parseID reads a uint path parameter, answering 400 itself on garbage.
func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, err
	}
	return uint(id), nil
}
