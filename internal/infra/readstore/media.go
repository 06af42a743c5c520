package readstore

import (
	"context"

	"discover-api/internal/domain/feed"
	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/pkg/pgconv"
	"discover-api/internal/usecase/queries"
)

type MediaReadQueries interface {
	GetMediaByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Media, error)
	GetMediaByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) ([]sqlc.Media, error)
	MediaExists(ctx context.Context, db sqlc.DBTX, id int64) (bool, error)
}

type MediaReadStore struct {
	queries MediaReadQueries
}

func NewMediaReadStore(queries MediaReadQueries) *MediaReadStore {
	return &MediaReadStore{queries: queries}
}

func (r *MediaReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*queries.MediaRecordView, error) {
	row, err := r.queries.GetMediaByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("media not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get media by id", err)
	}
	return &queries.MediaRecordView{
		ID:           row.ID,
		StorageID:    row.Uuid,
		Name:         row.Name,
		MimeType:     row.Mimetype,
		DateUploaded: pgconv.TimeFromPgtype(row.DateUploaded),
	}, nil
}

// FindByIDs returns the media rows that exist; missing ids are simply absent from the map.
func (r *MediaReadStore) FindByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) (map[int64]feed.MediaRecord, error) {
	out := make(map[int64]feed.MediaRecord, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.queries.GetMediaByIDs(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get media by ids", err)
	}
	for _, row := range rows {
		out[row.ID] = feed.MediaRecord{
			ID:        row.ID,
			StorageID: row.Uuid,
			Name:      row.Name,
			MimeType:  row.Mimetype,
		}
	}
	return out, nil
}

func (r *MediaReadStore) Exists(ctx context.Context, db sqlc.DBTX, id int64) (bool, error) {
	ok, err := r.queries.MediaExists(ctx, db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check media existence", err)
	}
	return ok, nil
}
