package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/lynossweets/storefront-server/internal/logger"
	"github.com/lynossweets/storefront-server/internal/model"
)

// ProductInput carries validated fields for creating or replacing a product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Cost        float64
	ImageURL    *string
	Category    string
	IsFeatured  bool
}

// Product implements catalog product operations, including image objects
// held in external storage.
type Product struct {
	products model.ProductStore
	storage  model.Storage
	logger   *logger.Logger
}

func NewProduct(products model.ProductStore, storage model.Storage, logger *logger.Logger) *Product {
	return &Product{
		products: products,
		storage:  storage,
		logger:   logger,
	}
}

func (s *Product) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *Product) Get(ctx context.Context, id int64) (model.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (s *Product) Create(ctx context.Context, input ProductInput) (model.Product, error) {
	product, err := s.products.Create(ctx, model.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Cost:        input.Cost,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		IsFeatured:  input.IsFeatured,
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("Product service: product created",
		"product_id", product.ID,
		"name", product.Name)

	return product, nil
}

func (s *Product) Update(ctx context.Context, id int64, input ProductInput) (model.Product, error) {
	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Price = input.Price
	existing.Cost = input.Cost
	existing.Category = input.Category
	existing.IsFeatured = input.IsFeatured
	if input.ImageURL != nil {
		existing.ImageURL = input.ImageURL
	}

	product, err := s.products.Update(ctx, existing)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

func (s *Product) Delete(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	// The image object is orphaned once the row is gone; removal failures
	// only cost storage space.
	if err := s.storage.Delete(ctx, imageKey(id)); err != nil && !errors.Is(err, model.ErrNotFound) {
		s.logger.Warn("Product service: failed to delete product image",
			"product_id", id,
			"error", err.Error())
	}

	return nil
}

// UploadImage stores an image object for the product and records its public
// URL on the row. Re-uploading replaces the previous object.
func (s *Product) UploadImage(ctx context.Context, id int64, reader io.Reader, size int64, contentType string) (model.Product, error) {
	if _, err := s.products.GetByID(ctx, id); err != nil {
		return model.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	if err := s.storage.Upload(ctx, imageKey(id), reader, size, contentType); err != nil {
		return model.Product{}, fmt.Errorf("failed to upload product image: %w", err)
	}

	imageURL := fmt.Sprintf("/api/products/%d/image", id)
	if err := s.products.SetImageURL(ctx, id, imageURL); err != nil {
		return model.Product{}, fmt.Errorf("failed to set product image url: %w", err)
	}

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	s.logger.Info("Product service: image uploaded",
		"product_id", id,
		"content_type", contentType)

	return product, nil
}

// GetImage streams the stored image object for the product.
func (s *Product) GetImage(ctx context.Context, id int64) (io.ReadCloser, model.ObjectInfo, error) {
	info, err := s.storage.Stat(ctx, imageKey(id))
	if err != nil {
		return nil, model.ObjectInfo{}, fmt.Errorf("failed to stat product image: %w", err)
	}

	reader, err := s.storage.Download(ctx, imageKey(id))
	if err != nil {
		return nil, model.ObjectInfo{}, fmt.Errorf("failed to download product image: %w", err)
	}

	return reader, info, nil
}

func imageKey(id int64) string {
	return fmt.Sprintf("products/%d", id)
}
