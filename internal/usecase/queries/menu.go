package queries

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"discover-api/internal/domain/feed"
	"discover-api/internal/domain/media"
	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/usecase/shared"

	"github.com/samber/lo"
)

type MenuQueries interface {
	// List returns the merchant's items ordered by name, byte-wise.
	List(ctx context.Context, merchantID int64) ([]MenuItemView, error)
}

type menuQueriesImpl struct {
	uow      shared.UnitOfWork
	stores   ReadStores
	resolver media.URLResolver
}

func NewMenuQueries(uow shared.UnitOfWork, stores ReadStores, resolver media.URLResolver) MenuQueries {
	return &menuQueriesImpl{uow: uow, stores: stores, resolver: resolver}
}

func (q *menuQueriesImpl) List(ctx context.Context, merchantID int64) ([]MenuItemView, error) {
	var views []MenuItemView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		if _, err := q.stores.Merchants.FindByID(ctx, db, merchantID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMerchantNotFound
			}
			return err
		}

		items, err := q.stores.Items.FindByMerchant(ctx, db, merchantID)
		if err != nil {
			return err
		}
		mediaIDs := lo.Uniq(lo.Map(items, func(it feed.ItemRecord, _ int) int64 { return it.MediaID }))
		mediaByID, err := q.stores.Media.FindByIDs(ctx, db, mediaIDs)
		if err != nil {
			return err
		}

		views = buildMenu(items, mediaByID, q.resolver)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// buildMenu drops items whose media is gone and sorts the rest by name
// (byte-wise, case-sensitive) and then id.
func buildMenu(items []feed.ItemRecord, mediaByID map[int64]feed.MediaRecord, resolver media.URLResolver) []MenuItemView {
	views := make([]MenuItemView, 0, len(items))
	for _, it := range items {
		m, ok := mediaByID[it.MediaID]
		if !ok {
			continue
		}
		views = append(views, MenuItemView{
			ID:          it.ID,
			Name:        it.Name,
			Price:       it.Price,
			Currency:    it.Currency,
			Description: it.Description,
			MediaURL:    resolver.Resolve(m.StorageID, m.Name),
			MimeType:    m.MimeType,
		})
	}
	slices.SortStableFunc(views, func(a, b MenuItemView) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return views
}
