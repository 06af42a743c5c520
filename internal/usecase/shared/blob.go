package shared

import (
	"context"

	"discover-api/internal/domain/media"
)

// BlobStore persists uploaded bytes and turns a stored object back into a
// public URL.
type BlobStore interface {
	media.URLResolver
	Put(ctx context.Context, key string, data []byte, contentType string) error
}
