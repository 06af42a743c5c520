package repository

import (
	"context"

	"discover-api/internal/domain/media"
	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/pkg/pgconv"
)

type MediaWriteQueries interface {
	CreateMedia(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMediaParams) (sqlc.Media, error)
}

type MediaRepository struct {
	queries MediaWriteQueries
}

func NewMediaRepository(queries MediaWriteQueries) *MediaRepository {
	return &MediaRepository{queries: queries}
}

func (r *MediaRepository) Create(ctx context.Context, tx sqlc.DBTX, m *media.Media) (int64, error) {
	params := sqlc.CreateMediaParams{
		Uuid:         m.StorageID(),
		Name:         m.Name(),
		Mimetype:     m.MimeType(),
		DateUploaded: pgconv.TimeToPgtype(m.UploadedAt()),
	}
	row, err := r.queries.CreateMedia(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create media", err)
	}
	return row.ID, nil
}
