package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lynossweets/storefront-server/internal/logger"
	"github.com/lynossweets/storefront-server/internal/model"
	"github.com/lynossweets/storefront-server/internal/service"
)

// CategoryService defines storefront category operations.
type CategoryService interface {
	ListActive(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, input service.CategoryInput) (model.Category, error)
	Update(ctx context.Context, id int64, update service.CategoryUpdate) (model.Category, error)
	Deactivate(ctx context.Context, id int64) (model.Category, error)
}

// Category handles HTTP endpoints for storefront categories.
type Category struct {
	categoryService CategoryService
	logger          *logger.Logger
}

// NewCategory creates a new Category handler.
func NewCategory(categoryService CategoryService, logger *logger.Logger) *Category {
	return &Category{
		categoryService: categoryService,
		logger:          logger,
	}
}

type categoryCreateRequest struct {
	Name      string `json:"name" binding:"required"`
	Slug      string `json:"slug"`
	IsActive  *bool  `json:"isActive"`
	SortOrder int    `json:"sortOrder"`
}

type categoryUpdateRequest struct {
	Name      *string `json:"name"`
	Slug      *string `json:"slug"`
	IsActive  *bool   `json:"isActive"`
	SortOrder *int    `json:"sortOrder"`
}

// List returns active categories in display order.
func (h *Category) List(c *gin.Context) {
	categories, err := h.categoryService.ListActive(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Create adds a category, deriving the slug from the name when absent.
func (h *Category) Create(c *gin.Context) {
	var req categoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), service.CategoryInput{
		Name:      req.Name,
		Slug:      req.Slug,
		IsActive:  req.IsActive,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// Update applies a partial edit; absent fields stay unchanged.
func (h *Category) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req categoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category payload"})
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, service.CategoryUpdate{
		Name:      req.Name,
		Slug:      req.Slug,
		IsActive:  req.IsActive,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// Delete deactivates a category instead of removing the row.
func (h *Category) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.Deactivate(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
}
