//go:build unit

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	s := NewMemoryStorage(testStorageConfig())
	data := []byte("png")

	require.NoError(t, s.Put(context.Background(), "k/logo.png", data, "image/png"))
	data[0] = 'x'

	obj, ok := s.Object("k/logo.png")
	require.True(t, ok)
	assert.Equal(t, "png", string(obj.Data))
	assert.Equal(t, "image/png", obj.ContentType)

	_, ok = s.Object("missing")
	assert.False(t, ok)
	assert.NoError(t, s.Health(context.Background()))
}
