package repository

import (
	"context"

	"discover-api/internal/domain/merchant"
	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
)

type MerchantWriteQueries interface {
	CreateMerchant(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMerchantParams) (sqlc.Merchants, error)
	UpdateMerchant(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMerchantParams) (int64, error)
	DeleteMerchant(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type MerchantRepository struct {
	queries MerchantWriteQueries
}

func NewMerchantRepository(queries MerchantWriteQueries) *MerchantRepository {
	return &MerchantRepository{queries: queries}
}

func (r *MerchantRepository) Create(ctx context.Context, tx sqlc.DBTX, m *merchant.Merchant) (int64, error) {
	row, err := r.queries.CreateMerchant(ctx, tx, sqlc.CreateMerchantParams{
		Name:   m.Name(),
		LogoID: m.LogoID(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create merchant", err)
	}
	return row.ID, nil
}

func (r *MerchantRepository) Update(ctx context.Context, tx sqlc.DBTX, m *merchant.Merchant) error {
	n, err := r.queries.UpdateMerchant(ctx, tx, sqlc.UpdateMerchantParams{
		ID:     m.ID(),
		Name:   m.Name(),
		LogoID: m.LogoID(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update merchant", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("merchant not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MerchantRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.DeleteMerchant(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete merchant", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("merchant not found", nil, infra.KindNotFound)
	}
	return nil
}
