package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lynossweets/storefront-server/internal/logger"
	"github.com/lynossweets/storefront-server/internal/model"
)

// SaleService defines back-office sale recording operations.
type SaleService interface {
	List(ctx context.Context) ([]model.Sale, error)
	Create(ctx context.Context, productID int64, quantity int) (model.Sale, error)
}

// Sale handles HTTP endpoints for recorded sales.
type Sale struct {
	saleService SaleService
	logger      *logger.Logger
}

// NewSale creates a new Sale handler.
func NewSale(saleService SaleService, logger *logger.Logger) *Sale {
	return &Sale{
		saleService: saleService,
		logger:      logger,
	}
}

type saleCreateRequest struct {
	ProductID int64 `json:"productId" binding:"required,gt=0"`
	Quantity  *int  `json:"quantity" binding:"omitempty,gte=1"`
}

// List returns the most recent sales, newest first.
func (h *Sale) List(c *gin.Context) {
	sales, err := h.saleService.List(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

// Create records a sale of a product; quantity defaults to 1.
func (h *Sale) Create(c *gin.Context) {
	var req saleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product id is required"})
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	sale, err := h.saleService.Create(c.Request.Context(), req.ProductID, quantity)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, sale)
}
