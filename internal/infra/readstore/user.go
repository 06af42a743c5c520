package readstore

import (
	"context"

	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/pkg/pgconv"
	"discover-api/internal/usecase/queries"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
}

func NewUserReadStore(queries UserReadQueries) *UserReadStore {
	return &UserReadStore{queries: queries}
}

func (r *UserReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*queries.UserRecordView, error) {
	row, err := r.queries.GetUserByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &queries.UserRecordView{
		ID:        row.ID,
		Name:      row.Name,
		ProfileID: pgconv.Int64PtrFromPgtype(row.ProfileID),
	}, nil
}
