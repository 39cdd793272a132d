package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lynossweets/storefront-server/internal/logger"
	"github.com/lynossweets/storefront-server/internal/model"
	"github.com/lynossweets/storefront-server/internal/service"
)

// maxImageSize caps product image uploads at 10 MiB.
const maxImageSize = 10 << 20

// ProductService defines product catalog operations.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, input service.ProductInput) (model.Product, error)
	Update(ctx context.Context, id int64, input service.ProductInput) (model.Product, error)
	Delete(ctx context.Context, id int64) error
	UploadImage(ctx context.Context, id int64, reader io.Reader, size int64, contentType string) (model.Product, error)
	GetImage(ctx context.Context, id int64) (io.ReadCloser, model.ObjectInfo, error)
}

// Product handles HTTP endpoints for the product catalog.
type Product struct {
	productService ProductService
	logger         *logger.Logger
}

// NewProduct creates a new Product handler.
func NewProduct(productService ProductService, logger *logger.Logger) *Product {
	return &Product{
		productService: productService,
		logger:         logger,
	}
}

type productRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Cost        float64 `json:"cost" binding:"gte=0"`
	ImageURL    *string `json:"imageUrl"`
	Category    string  `json:"category" binding:"required"`
	IsFeatured  bool    `json:"isFeatured"`
}

func (r productRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Cost:        r.Cost,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		IsFeatured:  r.IsFeatured,
	}
}

// List returns all products.
func (h *Product) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get returns one product by id.
func (h *Product) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create adds a product.
func (h *Product) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload"})
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Update replaces a product's fields.
func (h *Product) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload"})
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete removes a product. Products with recorded sales are refused.
func (h *Product) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UploadImage accepts a multipart "image" file and stores it for the product.
func (h *Product) UploadImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	product, err := h.productService.UploadImage(c.Request.Context(), id, file, fileHeader.Size, contentType)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetImage streams the product's stored image.
func (h *Product) GetImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	reader, info, err := h.productService.GetImage(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, info.Size, info.ContentType, reader, nil)
}
