package minio

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lynossweets/storefront-server/internal/model"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error

	putContentType string
	putErr         error

	getRC  io.ReadCloser
	getErr error

	removeErr error

	statInfo minioLib.ObjectInfo
	statErr  error
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}
func (f *fakeMinio) MakeBucket(_ context.Context, _ string, _ minioLib.MakeBucketOptions) error {
	return f.makeBucketErr
}
func (f *fakeMinio) PutObject(_ context.Context, _ string, _ string, _ io.Reader, _ int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	f.putContentType = opts.ContentType
	return minioLib.UploadInfo{}, f.putErr
}
func (f *fakeMinio) GetObject(_ context.Context, _ string, _ string, _ minioLib.GetObjectOptions) (io.ReadCloser, error) {
	return f.getRC, f.getErr
}
func (f *fakeMinio) RemoveObject(_ context.Context, _ string, _ string, _ minioLib.RemoveObjectOptions) error {
	return f.removeErr
}
func (f *fakeMinio) StatObject(_ context.Context, _ string, _ string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	return f.statInfo, f.statErr
}

func TestNewClientWithAPI_BucketExists(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(ctx, api, "storefront-images")
	require.NoError(t, err)
	assert.Equal(t, "storefront-images", c.bucket)
}

func TestNewClientWithAPI_CreateBucket(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: false}
	_, err := NewClientWithAPI(ctx, api, "storefront-images")
	require.NoError(t, err)
}

func TestNewClientWithAPI_BucketError(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExistsErr: errors.New("boom")}
	c, err := NewClientWithAPI(ctx, api, "storefront-images")
	assert.Nil(t, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ensure bucket exists")
}

func TestClient_Upload_PassesContentType(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(ctx, api, "storefront-images")
	require.NoError(t, err)

	err = c.Upload(ctx, "products/1", strings.NewReader("data"), 4, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", api.putContentType)
}

func TestClient_Stat_Missing(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{
		bucketExists: true,
		statErr:      minioLib.ErrorResponse{Code: "NoSuchKey"},
	}
	c, err := NewClientWithAPI(ctx, api, "storefront-images")
	require.NoError(t, err)

	_, err = c.Stat(ctx, "products/404")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestClient_Stat_Found(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{
		bucketExists: true,
		statInfo:     minioLib.ObjectInfo{Size: 4, ContentType: "image/png"},
	}
	c, err := NewClientWithAPI(ctx, api, "storefront-images")
	require.NoError(t, err)

	info, err := c.Stat(ctx, "products/1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), info.Size)
	assert.Equal(t, "image/png", info.ContentType)
}

func TestClient_Download(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{
		bucketExists: true,
		getRC:        io.NopCloser(strings.NewReader("data")),
	}
	c, err := NewClientWithAPI(ctx, api, "storefront-images")
	require.NoError(t, err)

	rc, err := c.Download(ctx, "products/1")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true, removeErr: errors.New("boom")}
	c, err := NewClientWithAPI(ctx, api, "storefront-images")
	require.NoError(t, err)

	assert.Error(t, c.Delete(ctx, "products/1"))
}
