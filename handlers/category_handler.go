package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-manager/helper"
	"prompt-manager/models"
	"prompt-manager/services"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindingError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(req)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindingError(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(id, req)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) GetSubcategories(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	subcategories, err := h.categoryService.GetSubcategories(id)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, subcategories)
}

func (h *CategoryHandler) CreateSubcategory(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	var req models.CreateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindingError(c, err)
		return
	}

	subcategory, err := h.categoryService.CreateSubcategory(id, req)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subcategory)
}

func (h *CategoryHandler) UpdateSubcategory(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	var req models.CreateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindingError(c, err)
		return
	}

	subcategory, err := h.categoryService.UpdateSubcategory(id, req)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, subcategory)
}

func (h *CategoryHandler) DeleteSubcategory(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	if err := h.categoryService.DeleteSubcategory(id); err != nil {
		helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
