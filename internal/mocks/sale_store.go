package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lynossweets/storefront-server/internal/model"
)

type SaleStore struct{ mock.Mock }

func (m *SaleStore) Create(ctx context.Context, sale model.Sale) (model.Sale, error) {
	args := m.Called(ctx, sale)
	return args.Get(0).(model.Sale), args.Error(1)
}

func (m *SaleStore) List(ctx context.Context, limit int) ([]model.Sale, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Sale), args.Error(1)
}

func (m *SaleStore) Totals(ctx context.Context) (model.SaleTotals, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.SaleTotals), args.Error(1)
}

func (m *SaleStore) TopProducts(ctx context.Context, limit int) ([]model.TopProduct, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TopProduct), args.Error(1)
}
