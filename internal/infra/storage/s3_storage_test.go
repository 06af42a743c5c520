//go:build unit

package storage

import (
	"context"
	"io"
	"testing"

	"discover-api/internal/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockObjectAPI struct {
	mock.Mock
}

func (m *MockObjectAPI) PutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.PutObjectOutput)
	return out, args.Error(1)
}

func (m *MockObjectAPI) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.HeadBucketOutput)
	return out, args.Error(1)
}

func testStorageConfig() config.StorageConfig {
	return config.StorageConfig{Bucket: "discover-media", Region: "ap-southeast-1"}
}

func TestS3Storage_Put(t *testing.T) {
	t.Run("sends object with content type and length", func(t *testing.T) {
		client := new(MockObjectAPI)
		var captured *s3.PutObjectInput
		client.On("PutObject", mock.Anything, mock.AnythingOfType("*s3.PutObjectInput")).
			Run(func(args mock.Arguments) { captured = args.Get(1).(*s3.PutObjectInput) }).
			Return(&s3.PutObjectOutput{}, nil)

		s := NewS3StorageWithClient(testStorageConfig(), client)
		err := s.Put(context.Background(), "abc/latte.jpg", []byte("jpeg"), "image/jpeg")

		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.Equal(t, "discover-media", aws.ToString(captured.Bucket))
		assert.Equal(t, "abc/latte.jpg", aws.ToString(captured.Key))
		assert.Equal(t, "image/jpeg", aws.ToString(captured.ContentType))
		assert.Equal(t, int64(4), aws.ToInt64(captured.ContentLength))
		body, err := io.ReadAll(captured.Body)
		require.NoError(t, err)
		assert.Equal(t, "jpeg", string(body))
	})

	t.Run("client error is wrapped with the key", func(t *testing.T) {
		client := new(MockObjectAPI)
		client.On("PutObject", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		err := NewS3StorageWithClient(testStorageConfig(), client).
			Put(context.Background(), "abc/latte.jpg", []byte("x"), "image/jpeg")

		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "abc/latte.jpg")
	})
}

func TestS3Storage_Health(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "bucket reachable"},
		{name: "bucket unreachable", err: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockObjectAPI)
			client.On("HeadBucket", mock.Anything, &s3.HeadBucketInput{Bucket: aws.String("discover-media")}).
				Return(&s3.HeadBucketOutput{}, tt.err)

			err := NewS3StorageWithClient(testStorageConfig(), client).Health(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			client.AssertExpectations(t)
		})
	}
}

func TestS3Storage_ResolveIgnoresEndpoint(t *testing.T) {
	cfg := testStorageConfig()
	cfg.Endpoint = "http://localhost:4566"
	s := NewS3StorageWithClient(cfg, new(MockObjectAPI))

	assert.Contains(t, s.Resolve(uuid.Nil, "a.png"), "https://discover-media.s3.ap-southeast-1.amazonaws.com/")
}
