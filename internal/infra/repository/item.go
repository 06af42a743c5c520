package repository

import (
	"context"

	"discover-api/internal/domain/item"
	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
)

type ItemWriteQueries interface {
	CreateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateItemParams) (sqlc.Items, error)
	UpdateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateItemParams) (int64, error)
	DeleteItem(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type ItemRepository struct {
	queries ItemWriteQueries
}

func NewItemRepository(queries ItemWriteQueries) *ItemRepository {
	return &ItemRepository{queries: queries}
}

func (r *ItemRepository) Create(ctx context.Context, tx sqlc.DBTX, it *item.Item) (int64, error) {
	params := sqlc.CreateItemParams{
		MerchantID:  it.MerchantID(),
		Name:        it.Name(),
		MediaID:     it.MediaID(),
		Price:       it.Price().Amount(),
		Currency:    it.Currency().String(),
		Description: it.Description(),
	}
	row, err := r.queries.CreateItem(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create item", err)
	}
	return row.ID, nil
}

func (r *ItemRepository) Update(ctx context.Context, tx sqlc.DBTX, it *item.Item) error {
	params := sqlc.UpdateItemParams{
		ID:          it.ID(),
		Name:        it.Name(),
		MediaID:     it.MediaID(),
		Price:       it.Price().Amount(),
		Currency:    it.Currency().String(),
		Description: it.Description(),
	}
	n, err := r.queries.UpdateItem(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.DeleteItem(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
