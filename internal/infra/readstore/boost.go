package readstore

import (
	"context"
	"time"

	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type BoostReadQueries interface {
	GetLatestBoostEnds(ctx context.Context, db sqlc.DBTX, postIds []int64) ([]sqlc.GetLatestBoostEndsRow, error)
	HasActiveBoost(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (bool, error)
}

type BoostReadStore struct {
	queries BoostReadQueries
}

func NewBoostReadStore(queries BoostReadQueries) *BoostReadStore {
	return &BoostReadStore{queries: queries}
}

// LatestEnds maps each boosted post to its latest end_time. Whether that is
// still in the future is decided by the caller's clock.
func (r *BoostReadStore) LatestEnds(ctx context.Context, db sqlc.DBTX, postIDs []int64) (map[int64]time.Time, error) {
	out := make(map[int64]time.Time, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}
	rows, err := r.queries.GetLatestBoostEnds(ctx, db, postIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get latest boost ends", err)
	}
	for _, row := range rows {
		out[row.PostID] = pgconv.TimeFromPgtype(row.EndTime)
	}
	return out, nil
}

func (r *BoostReadStore) HasActive(ctx context.Context, db sqlc.DBTX, now time.Time) (bool, error) {
	ok, err := r.queries.HasActiveBoost(ctx, db, pgconv.TimeToPgtype(now))
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active boost", err)
	}
	return ok, nil
}
