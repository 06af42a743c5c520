package queries

import (
	"context"

	"discover-api/internal/domain/media"
	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/pkg/errs"
	"discover-api/internal/usecase/shared"
)

var ErrUserNotFound = errs.NotFound("user not found")

type UserQueries interface {
	GetByID(ctx context.Context, id int64) (*UserView, error)
}

type userQueriesImpl struct {
	uow      shared.UnitOfWork
	stores   ReadStores
	resolver media.URLResolver
}

func NewUserQueries(uow shared.UnitOfWork, stores ReadStores, resolver media.URLResolver) UserQueries {
	return &userQueriesImpl{uow: uow, stores: stores, resolver: resolver}
}

// GetByID leaves the profile URL empty when the profile media is gone.
func (q *userQueriesImpl) GetByID(ctx context.Context, id int64) (*UserView, error) {
	var view *UserView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		u, err := q.stores.Users.FindByID(ctx, db, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		view = &UserView{ID: u.ID, Name: u.Name, ProfileID: u.ProfileID}
		if u.ProfileID == nil {
			return nil
		}

		profile, err := q.stores.Media.FindByID(ctx, db, *u.ProfileID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		url := q.resolver.Resolve(profile.StorageID, profile.Name)
		view.ProfileURL = &url
		view.ProfileMimeType = &profile.MimeType
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
