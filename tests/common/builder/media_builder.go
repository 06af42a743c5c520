//go:build unit || e2e

package builder

import (
	"time"

	"discover-api/internal/domain/feed"
	"discover-api/internal/domain/media"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var FixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type MediaBuilder struct {
	ID           int64
	StorageID    uuid.UUID
	Name         string
	MimeType     string
	DateUploaded time.Time
}

func NewMediaBuilder() *MediaBuilder {
	return &MediaBuilder{
		ID:           10,
		StorageID:    uuid.MustParse("6f1c9a52-3a2b-4c1e-9d7e-2b8f0a4c5d6e"),
		Name:         "latte.jpg",
		MimeType:     "image/jpeg",
		DateUploaded: FixedTime,
	}
}

func (b *MediaBuilder) With(mutate func(*MediaBuilder)) *MediaBuilder {
	mutate(b)
	return b
}

func (b *MediaBuilder) WithID(id int64) *MediaBuilder {
	b.ID = id
	return b
}

func (b *MediaBuilder) WithName(name string) *MediaBuilder {
	b.Name = name
	return b
}

func (b *MediaBuilder) BuildDomain() *media.Media {
	return media.Reconstruct(b.ID, b.StorageID, b.Name, b.MimeType, b.DateUploaded)
}

func (b *MediaBuilder) BuildInfra() sqlc.Media {
	return sqlc.Media{
		ID:           b.ID,
		Uuid:         b.StorageID,
		Name:         b.Name,
		Mimetype:     b.MimeType,
		DateUploaded: pgtype.Timestamptz{Time: b.DateUploaded, Valid: true},
	}
}

func (b *MediaBuilder) BuildRecord() feed.MediaRecord {
	return feed.MediaRecord{
		ID:        b.ID,
		StorageID: b.StorageID,
		Name:      b.Name,
		MimeType:  b.MimeType,
	}
}

func (b *MediaBuilder) BuildRecordView() *queries.MediaRecordView {
	return &queries.MediaRecordView{
		ID:           b.ID,
		StorageID:    b.StorageID,
		Name:         b.Name,
		MimeType:     b.MimeType,
		DateUploaded: b.DateUploaded,
	}
}

// URL is what the default test resolver produces for this media.
func (b *MediaBuilder) URL() string {
	return TestURL(b.StorageID, b.Name)
}
