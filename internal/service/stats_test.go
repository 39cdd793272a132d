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

func TestStats_Get(t *testing.T) {
	// Sales (8.99, 3.50) x2 and (7.99, 2.80) x1.
	ctx := context.Background()
	products := &mocks.ProductStore{}
	sales := &mocks.SaleStore{}
	users := &mocks.UserStore{}

	products.On("Count", mock.Anything).Return(int64(5), nil)
	sales.On("Totals", mock.Anything).Return(model.SaleTotals{
		Count:   2,
		Revenue: 25.97,
		Cost:    9.80,
	}, nil)
	users.On("CountByRole", mock.Anything, model.RoleUser).Return(int64(3), nil)
	users.On("CountByRole", mock.Anything, model.RoleAdmin).Return(int64(1), nil)
	sales.On("TopProducts", mock.Anything, topProductsLimit).Return([]model.TopProduct{
		{Product: model.Product{ID: 3, Name: "Chocolate Chip Cookies"}, TotalSold: 2, SaleCount: 1},
	}, nil)

	s := NewStats(products, sales, users, testutil.MakeNoopLogger())

	stats, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalProducts)
	assert.Equal(t, int64(2), stats.TotalSales)
	assert.InDelta(t, 25.97, stats.TotalRevenue, 1e-9)
	assert.InDelta(t, 9.80, stats.TotalCost, 1e-9)
	assert.InDelta(t, 16.17, stats.TotalMargin, 1e-9)
	assert.InDelta(t, 62.26, stats.MarginPercentage, 1e-9)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalAdmins)
	require.Len(t, stats.TopProducts, 1)
	assert.Equal(t, int64(2), stats.TopProducts[0].TotalSold)
}

func TestStats_Get_NoSales(t *testing.T) {
	ctx := context.Background()
	products := &mocks.ProductStore{}
	sales := &mocks.SaleStore{}
	users := &mocks.UserStore{}

	products.On("Count", mock.Anything).Return(int64(0), nil)
	sales.On("Totals", mock.Anything).Return(model.SaleTotals{}, nil)
	users.On("CountByRole", mock.Anything, model.RoleUser).Return(int64(0), nil)
	users.On("CountByRole", mock.Anything, model.RoleAdmin).Return(int64(1), nil)
	sales.On("TopProducts", mock.Anything, topProductsLimit).Return([]model.TopProduct{}, nil)

	s := NewStats(products, sales, users, testutil.MakeNoopLogger())

	stats, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalRevenue)
	// Division by zero revenue must not poison the percentage.
	assert.Zero(t, stats.MarginPercentage)
}
