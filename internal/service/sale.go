package service

import (
	"context"
	"fmt"

	"github.com/lynossweets/storefront-server/internal/logger"
	"github.com/lynossweets/storefront-server/internal/model"
)

// saleListLimit caps the back-office sales listing.
const saleListLimit = 100

// Sale records back-office sales. Creation snapshots the product's current
// sale and cost price onto the row; the read and the insert are two
// statements without a transaction, which tolerates a price edit landing in
// between at this traffic level.
type Sale struct {
	sales    model.SaleStore
	products model.ProductStore
	logger   *logger.Logger
}

func NewSale(sales model.SaleStore, products model.ProductStore, logger *logger.Logger) *Sale {
	return &Sale{
		sales:    sales,
		products: products,
		logger:   logger,
	}
}

func (s *Sale) List(ctx context.Context) ([]model.Sale, error) {
	sales, err := s.sales.List(ctx, saleListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}

func (s *Sale) Create(ctx context.Context, productID int64, quantity int) (model.Sale, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return model.Sale{}, fmt.Errorf("failed to get product: %w", err)
	}

	sale, err := s.sales.Create(ctx, model.Sale{
		ProductID: product.ID,
		Quantity:  quantity,
		SalePrice: product.Price,
		CostPrice: product.Cost,
	})
	if err != nil {
		return model.Sale{}, fmt.Errorf("failed to create sale: %w", err)
	}

	s.logger.Info("Sale service: sale recorded",
		"sale_id", sale.ID,
		"product_id", product.ID,
		"quantity", quantity)

	return sale, nil
}
