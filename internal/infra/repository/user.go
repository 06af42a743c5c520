package repository

import (
	"context"

	"discover-api/internal/domain/user"
	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (int64, error) {
	row, err := r.queries.CreateUser(ctx, tx, sqlc.CreateUserParams{
		Name:      u.Name(),
		ProfileID: pgconv.Int64PtrToPgtype(u.ProfileID()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return row.ID, nil
}
