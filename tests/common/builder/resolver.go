//go:build unit || e2e

package builder

import (
	"discover-api/internal/infra/storage"

	"github.com/google/uuid"
)

const (
	TestBucket = "discover-test"
	TestRegion = "ap-southeast-1"
)

func NewTestResolver() *storage.PublicURLResolver {
	return storage.NewPublicURLResolver(TestBucket, TestRegion)
}

func TestURL(storageID uuid.UUID, filename string) string {
	return NewTestResolver().Resolve(storageID, filename)
}
