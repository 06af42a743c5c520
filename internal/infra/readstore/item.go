package readstore

import (
	"context"

	"discover-api/internal/domain/feed"
	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/pkg/pgconv"
	"discover-api/internal/usecase/queries"

	"github.com/samber/lo"
)

type ItemReadQueries interface {
	GetItemByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Items, error)
	GetItemsByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) ([]sqlc.Items, error)
	ListItemsByMerchant(ctx context.Context, db sqlc.DBTX, merchantID int64) ([]sqlc.Items, error)
}

type ItemReadStore struct {
	queries ItemReadQueries
}

func NewItemReadStore(queries ItemReadQueries) *ItemReadStore {
	return &ItemReadStore{queries: queries}
}

func (r *ItemReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*queries.ItemRecordView, error) {
	row, err := r.queries.GetItemByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item by id", err)
	}
	return &queries.ItemRecordView{
		ItemRecord: toItemRecord(row),
		MerchantID: row.MerchantID,
	}, nil
}

func (r *ItemReadStore) FindByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) (map[int64]feed.ItemRecord, error) {
	if len(ids) == 0 {
		return map[int64]feed.ItemRecord{}, nil
	}
	rows, err := r.queries.GetItemsByIDs(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get items by ids", err)
	}
	return lo.SliceToMap(rows, func(row sqlc.Items) (int64, feed.ItemRecord) {
		return row.ID, toItemRecord(row)
	}), nil
}

// FindByMerchant returns the merchant's items in menu order.
func (r *ItemReadStore) FindByMerchant(ctx context.Context, db sqlc.DBTX, merchantID int64) ([]feed.ItemRecord, error) {
	rows, err := r.queries.ListItemsByMerchant(ctx, db, merchantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by merchant", err)
	}
	return lo.Map(rows, func(row sqlc.Items, _ int) feed.ItemRecord {
		return toItemRecord(row)
	}), nil
}

func toItemRecord(row sqlc.Items) feed.ItemRecord {
	return feed.ItemRecord{
		ID:          row.ID,
		Name:        row.Name,
		MediaID:     row.MediaID,
		Price:       row.Price,
		Currency:    row.Currency,
		Description: row.Description,
	}
}
