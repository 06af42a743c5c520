package readstore

import (
	"context"

	"discover-api/internal/domain/feed"
	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/pkg/pgconv"

	"github.com/samber/lo"
)

type MerchantReadQueries interface {
	GetMerchantByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Merchants, error)
	GetMerchantsByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) ([]sqlc.Merchants, error)
}

type MerchantReadStore struct {
	queries MerchantReadQueries
}

func NewMerchantReadStore(queries MerchantReadQueries) *MerchantReadStore {
	return &MerchantReadStore{queries: queries}
}

func (r *MerchantReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*feed.MerchantRecord, error) {
	row, err := r.queries.GetMerchantByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("merchant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get merchant by id", err)
	}
	rec := toMerchantRecord(row)
	return &rec, nil
}

func (r *MerchantReadStore) FindByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) (map[int64]feed.MerchantRecord, error) {
	if len(ids) == 0 {
		return map[int64]feed.MerchantRecord{}, nil
	}
	rows, err := r.queries.GetMerchantsByIDs(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get merchants by ids", err)
	}
	return lo.SliceToMap(rows, func(row sqlc.Merchants) (int64, feed.MerchantRecord) {
		return row.ID, toMerchantRecord(row)
	}), nil
}

func toMerchantRecord(row sqlc.Merchants) feed.MerchantRecord {
	return feed.MerchantRecord{ID: row.ID, Name: row.Name, LogoID: row.LogoID}
}
