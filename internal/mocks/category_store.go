package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lynossweets/storefront-server/internal/model"
)

type CategoryStore struct{ mock.Mock }

func (m *CategoryStore) ListActive(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *CategoryStore) GetByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *CategoryStore) Create(ctx context.Context, category model.Category) (model.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *CategoryStore) Update(ctx context.Context, category model.Category) (model.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *CategoryStore) Deactivate(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Category), args.Error(1)
}
