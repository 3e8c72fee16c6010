package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-manager/helper"
	"prompt-manager/models"
	"prompt-manager/services"
)

type TagHandler struct {
	tagService services.TagService
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.GetTags()
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindingError(c, err)
		return
	}

	tag, err := h.tagService.CreateTag(req)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	if err := h.tagService.DeleteTag(id); err != nil {
		helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
