package storage

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// PublicURLResolver builds virtual-hosted-style S3 URLs. The URL shape does
// not depend on any custom endpoint used for uploads.
type PublicURLResolver struct {
	bucket string
	region string
}

func NewPublicURLResolver(bucket, region string) *PublicURLResolver {
	return &PublicURLResolver{
		bucket: strings.TrimSpace(bucket),
		region: strings.TrimSpace(region),
	}
}

func (r *PublicURLResolver) Resolve(storageID uuid.UUID, filename string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s/%s",
		r.bucket, r.region, storageID.String(), url.PathEscape(filename))
}
