package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lynossweets/storefront-server/internal/mocks"
	"github.com/lynossweets/storefront-server/internal/model"
	"github.com/lynossweets/storefront-server/internal/testutil"
)

func TestSale_Create_SnapshotsPrices(t *testing.T) {
	ctx := context.Background()
	sales := &mocks.SaleStore{}
	products := &mocks.ProductStore{}

	products.On("GetByID", mock.Anything, int64(3)).Return(model.Product{
		ID:    3,
		Name:  "Chocolate Chip Cookies",
		Price: 8.99,
		Cost:  3.50,
	}, nil)
	sales.On("Create", mock.Anything, mock.MatchedBy(func(sale model.Sale) bool {
		return sale.ProductID == 3 && sale.Quantity == 2 &&
			sale.SalePrice == 8.99 && sale.CostPrice == 3.50
	})).Return(model.Sale{ID: 1, ProductID: 3, Quantity: 2, SalePrice: 8.99, CostPrice: 3.50}, nil)

	s := NewSale(sales, products, testutil.MakeNoopLogger())

	sale, err := s.Create(ctx, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 8.99, sale.SalePrice)
	assert.Equal(t, 3.50, sale.CostPrice)
	assert.Equal(t, 2, sale.Quantity)
	sales.AssertExpectations(t)
}

func TestSale_Create_UnknownProduct(t *testing.T) {
	ctx := context.Background()
	sales := &mocks.SaleStore{}
	products := &mocks.ProductStore{}

	products.On("GetByID", mock.Anything, int64(99)).Return(model.Product{}, model.ErrNotFound)

	s := NewSale(sales, products, testutil.MakeNoopLogger())

	_, err := s.Create(ctx, 99, 1)
	require.ErrorIs(t, err, model.ErrNotFound)
	sales.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSale_List(t *testing.T) {
	ctx := context.Background()
	sales := &mocks.SaleStore{}
	products := &mocks.ProductStore{}

	sales.On("List", mock.Anything, saleListLimit).Return([]model.Sale{{ID: 1}, {ID: 2}}, nil)

	s := NewSale(sales, products, testutil.MakeNoopLogger())

	got, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
