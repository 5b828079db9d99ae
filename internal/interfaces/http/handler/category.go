package handler

import (
	"github.com/docs2ai/gateway/internal/application/catalog"
	"github.com/docs2ai/gateway/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// CategoryHandler serves expense category endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *catalog.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalog.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// RegisterRoutes registers category routes on the API group
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.ListCategories)
	rg.POST("/categories", h.CreateCategory)
}

// ListCategories returns products usable as expense categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	responses, total, err := h.categoryService.ListCategories(c.Request.Context(), dto.ParseFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.List(c, responses, len(responses), total)
}

// CreateCategory creates an expensable product
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req catalog.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid JSON payload")
		return
	}
	resp, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "Category created successfully", resp)
}
