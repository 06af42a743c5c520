package queries

import (
	"context"

	"discover-api/internal/domain/media"
	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/pkg/errs"
	"discover-api/internal/usecase/shared"
)

var ErrMediaNotFound = errs.NotFound("media not found")

type MediaQueries interface {
	GetByID(ctx context.Context, id int64) (*MediaView, error)
}

type mediaQueriesImpl struct {
	uow      shared.UnitOfWork
	store    MediaReadStore
	resolver media.URLResolver
}

func NewMediaQueries(uow shared.UnitOfWork, stores ReadStores, resolver media.URLResolver) MediaQueries {
	return &mediaQueriesImpl{uow: uow, store: stores.Media, resolver: resolver}
}

func (q *mediaQueriesImpl) GetByID(ctx context.Context, id int64) (*MediaView, error) {
	var rec *MediaRecordView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		rec, err = q.store.FindByID(ctx, db, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return &MediaView{
		ID:           rec.ID,
		Name:         rec.Name,
		MimeType:     rec.MimeType,
		URL:          q.resolver.Resolve(rec.StorageID, rec.Name),
		DateUploaded: rec.DateUploaded,
	}, nil
}
