package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"vehicle-reconciler/core/storage"
	"vehicle-reconciler/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, "vehicles/1FTBW9CK5PKA12345/result.json", storage.Join("vehicles/", "1FTBW9CK5PKA12345", "result.json"))
	assert.Equal(t, "a/b", storage.Join("", "/a/", "", "b"))
	assert.Equal(t, "", storage.Join())
}

func TestPutJSON(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)

	var uploaded []byte
	client.On("PutObject", ctx, "bucket", "vehicles/x.json", mock.Anything, mock.Anything, mock.MatchedBy(func(o minio.PutObjectOptions) bool {
		return o.ContentType == "application/json"
	})).Run(func(args mock.Arguments) {
		data, _ := io.ReadAll(args.Get(3).(io.Reader))
		uploaded = data
		assert.Equal(t, int64(len(data)), args.Get(4).(int64))
	}).Return(minio.UploadInfo{}, nil)

	err := storage.PutJSON(ctx, client, "bucket", "vehicles/x.json", map[string]any{"Make": "Ford"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Make":"Ford"}`, string(uploaded))
}

func TestPutJSON_UploadFails(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("PutObject", ctx, "bucket", "k", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("denied"))

	err := storage.PutJSON(ctx, client, "bucket", "k", 1)
	assert.ErrorContains(t, err, "denied")
}

func TestGetJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("Decodes", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "bucket", "k", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(`{"city08": 28}`))), nil)

		var out map[string]any
		require.NoError(t, storage.GetJSON(ctx, client, "bucket", "k", &out))
		assert.Equal(t, float64(28), out["city08"])
	})

	t.Run("Missing Key", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "bucket", "k", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."})

		var out map[string]any
		err := storage.GetJSON(ctx, client, "bucket", "k", &out)
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	})

	t.Run("Bad JSON", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "bucket", "k", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(`{`))), nil)

		var out map[string]any
		err := storage.GetJSON(ctx, client, "bucket", "k", &out)
		assert.ErrorContains(t, err, "failed to decode")
		assert.NotErrorIs(t, err, storage.ErrObjectNotFound)
	})
}

func TestListKeys(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", ctx, "bucket", minio.ListObjectsOptions{Prefix: "vehicles/"}).
			Return(mocks.ObjectChannel(minio.ObjectInfo{Key: "vehicles/A/"}, minio.ObjectInfo{Key: "vehicles/B/"}))

		keys, err := storage.ListKeys(ctx, client, "bucket", "vehicles/", false)
		require.NoError(t, err)
		assert.Equal(t, []string{"vehicles/A/", "vehicles/B/"}, keys)
	})

	t.Run("Listing Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", ctx, "bucket", mock.Anything).
			Return(mocks.ObjectChannel(minio.ObjectInfo{Err: errors.New("timeout")}))

		_, err := storage.ListKeys(ctx, client, "bucket", "vehicles/", true)
		assert.ErrorContains(t, err, "timeout")
	})
}

func TestRemovePrefix(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("ListObjects", ctx, "bucket", minio.ListObjectsOptions{Prefix: "vehicles/A/", Recursive: true}).
		Return(mocks.ObjectChannel(minio.ObjectInfo{Key: "vehicles/A/primary.json"}, minio.ObjectInfo{Key: "vehicles/A/result.json"}))
	client.On("RemoveObjects", ctx, "bucket", mock.Anything, mock.Anything).Return(nil)

	n, err := storage.RemovePrefix(ctx, client, "bucket", "vehicles/A/")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	client.AssertExpectations(t)
}

func TestRemovePrefix_Empty(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("ListObjects", ctx, "bucket", mock.Anything).Return(mocks.ObjectChannel())

	n, err := storage.RemovePrefix(ctx, client, "bucket", "vehicles/A/")
	require.NoError(t, err)
	assert.Zero(t, n)
	client.AssertNotCalled(t, "RemoveObjects", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
