package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lynossweets/storefront-server/internal/mocks"
	"github.com/lynossweets/storefront-server/internal/model"
	"github.com/lynossweets/storefront-server/internal/testutil"
)

func TestProduct_Create(t *testing.T) {
	ctx := context.Background()
	products := &mocks.ProductStore{}
	storage := &mocks.Storage{}

	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "Vanilla Cupcakes" && p.Price == 12.99 && p.Cost == 5.50
	})).Return(model.Product{ID: 5, Name: "Vanilla Cupcakes"}, nil)

	s := NewProduct(products, storage, testutil.MakeNoopLogger())

	created, err := s.Create(ctx, ProductInput{
		Name:     "Vanilla Cupcakes",
		Price:    12.99,
		Cost:     5.50,
		Category: "Cupcakes",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
}

func TestProduct_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	products := &mocks.ProductStore{}

	products.On("GetByID", mock.Anything, int64(404)).Return(model.Product{}, model.ErrNotFound)

	s := NewProduct(products, &mocks.Storage{}, testutil.MakeNoopLogger())

	_, err := s.Update(ctx, 404, ProductInput{Name: "x"})
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestProduct_Update_KeepsImageWhenAbsent(t *testing.T) {
	ctx := context.Background()
	products := &mocks.ProductStore{}
	existingURL := "/api/products/5/image"

	products.On("GetByID", mock.Anything, int64(5)).Return(model.Product{
		ID: 5, Name: "Vanilla Cupcakes", ImageURL: &existingURL,
	}, nil)
	products.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ImageURL != nil && *p.ImageURL == existingURL && p.Price == 13.99
	})).Return(model.Product{ID: 5}, nil)

	s := NewProduct(products, &mocks.Storage{}, testutil.MakeNoopLogger())

	_, err := s.Update(ctx, 5, ProductInput{Name: "Vanilla Cupcakes", Price: 13.99, Cost: 5.50})
	require.NoError(t, err)
	products.AssertExpectations(t)
}

func TestProduct_Delete_RemovesImageObject(t *testing.T) {
	ctx := context.Background()
	products := &mocks.ProductStore{}
	storage := &mocks.Storage{}

	products.On("Delete", mock.Anything, int64(5)).Return(nil)
	storage.On("Delete", mock.Anything, "products/5").Return(model.ErrNotFound)

	s := NewProduct(products, storage, testutil.MakeNoopLogger())

	require.NoError(t, s.Delete(ctx, 5))
	storage.AssertExpectations(t)
}

func TestProduct_Delete_Referenced(t *testing.T) {
	ctx := context.Background()
	products := &mocks.ProductStore{}
	storage := &mocks.Storage{}

	products.On("Delete", mock.Anything, int64(5)).Return(model.ErrProductReferenced)

	s := NewProduct(products, storage, testutil.MakeNoopLogger())

	err := s.Delete(ctx, 5)
	require.ErrorIs(t, err, model.ErrProductReferenced)
	storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProduct_UploadImage(t *testing.T) {
	ctx := context.Background()
	products := &mocks.ProductStore{}
	storage := &mocks.Storage{}
	url := "/api/products/5/image"

	products.On("GetByID", mock.Anything, int64(5)).Return(model.Product{ID: 5}, nil).Once()
	storage.On("Upload", mock.Anything, "products/5", mock.Anything, int64(4), "image/png").Return(nil)
	products.On("SetImageURL", mock.Anything, int64(5), url).Return(nil)
	products.On("GetByID", mock.Anything, int64(5)).Return(model.Product{ID: 5, ImageURL: &url}, nil).Once()

	s := NewProduct(products, storage, testutil.MakeNoopLogger())

	product, err := s.UploadImage(ctx, 5, strings.NewReader("data"), 4, "image/png")
	require.NoError(t, err)
	require.NotNil(t, product.ImageURL)
	assert.Equal(t, url, *product.ImageURL)
	storage.AssertExpectations(t)
}

func TestProduct_GetImage(t *testing.T) {
	ctx := context.Background()
	storage := &mocks.Storage{}

	storage.On("Stat", mock.Anything, "products/5").Return(model.ObjectInfo{Size: 4, ContentType: "image/png"}, nil)
	storage.On("Download", mock.Anything, "products/5").Return(io.NopCloser(strings.NewReader("data")), nil)

	s := NewProduct(&mocks.ProductStore{}, storage, testutil.MakeNoopLogger())

	reader, info, err := s.GetImage(ctx, 5)
	require.NoError(t, err)
	defer reader.Close()
	assert.Equal(t, int64(4), info.Size)
	assert.Equal(t, "image/png", info.ContentType)
}

func TestProduct_GetImage_Missing(t *testing.T) {
	ctx := context.Background()
	storage := &mocks.Storage{}

	storage.On("Stat", mock.Anything, "products/9").Return(model.ObjectInfo{}, model.ErrNotFound)

	s := NewProduct(&mocks.ProductStore{}, storage, testutil.MakeNoopLogger())

	_, _, err := s.GetImage(ctx, 9)
	require.ErrorIs(t, err, model.ErrNotFound)
}
