package repository

import (
	"context"

	"discover-api/internal/domain/boost"
	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/pkg/pgconv"
)

// BoostAdmissionLockKey is the pg_advisory_xact_lock key that serializes
// boost admissions across connections.
const BoostAdmissionLockKey int64 = 0x626f6f7374 // "boost"

type BoostWriteQueries interface {
	LockBoostAdmission(ctx context.Context, db sqlc.DBTX, lockKey int64) error
	CreateBoost(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBoostParams) (sqlc.Boosts, error)
}

type BoostRepository struct {
	queries BoostWriteQueries
}

func NewBoostRepository(queries BoostWriteQueries) *BoostRepository {
	return &BoostRepository{queries: queries}
}

// LockAdmission blocks until no other transaction holds the admission lock.
// The lock is released when tx commits or rolls back.
func (r *BoostRepository) LockAdmission(ctx context.Context, tx sqlc.DBTX) error {
	if err := r.queries.LockBoostAdmission(ctx, tx, BoostAdmissionLockKey); err != nil {
		return infra.WrapRepoErr("failed to acquire boost admission lock", err)
	}
	return nil
}

func (r *BoostRepository) Create(ctx context.Context, tx sqlc.DBTX, b *boost.Boost) (*boost.Boost, error) {
	row, err := r.queries.CreateBoost(ctx, tx, sqlc.CreateBoostParams{
		PostID:  b.PostID(),
		EndTime: pgconv.TimeToPgtype(b.EndTime()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create boost", err)
	}
	return boost.Reconstruct(row.ID, row.PostID, pgconv.TimeFromPgtype(row.EndTime)), nil
}
