package queries

import (
	"context"

	"discover-api/internal/domain/media"
	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/pkg/errs"
	"discover-api/internal/usecase/shared"
)

var ErrMerchantNotFound = errs.NotFound("merchant not found")

type MerchantQueries interface {
	GetByID(ctx context.Context, id int64) (*MerchantView, error)
}

type merchantQueriesImpl struct {
	uow      shared.UnitOfWork
	stores   ReadStores
	resolver media.URLResolver
}

func NewMerchantQueries(uow shared.UnitOfWork, stores ReadStores, resolver media.URLResolver) MerchantQueries {
	return &merchantQueriesImpl{uow: uow, stores: stores, resolver: resolver}
}

func (q *merchantQueriesImpl) GetByID(ctx context.Context, id int64) (*MerchantView, error) {
	var view *MerchantView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		m, err := q.stores.Merchants.FindByID(ctx, db, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMerchantNotFound
			}
			return err
		}
		logo, err := q.stores.Media.FindByID(ctx, db, m.LogoID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMerchantLogoNotFound
			}
			return err
		}
		view = &MerchantView{
			ID:           m.ID,
			Name:         m.Name,
			LogoID:       m.LogoID,
			LogoURL:      q.resolver.Resolve(logo.StorageID, logo.Name),
			LogoMimeType: logo.MimeType,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
