//go:build unit

package queries_test

import (
	"context"

	"discover-api/internal/domain/feed"
	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/usecase/queries"
	queriesmock "discover-api/tests/mock/queries"
	sharedmock "discover-api/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

type storeMocks struct {
	uow       *sharedmock.MockUnitOfWork
	posts     *queriesmock.MockPostReadStore
	media     *queriesmock.MockMediaReadStore
	merchants *queriesmock.MockMerchantReadStore
	items     *queriesmock.MockItemReadStore
	boosts    *queriesmock.MockBoostReadStore
	users     *queriesmock.MockUserReadStore
}

func newStoreMocks(ctrl *gomock.Controller) *storeMocks {
	return &storeMocks{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		posts:     queriesmock.NewMockPostReadStore(ctrl),
		media:     queriesmock.NewMockMediaReadStore(ctrl),
		merchants: queriesmock.NewMockMerchantReadStore(ctrl),
		items:     queriesmock.NewMockItemReadStore(ctrl),
		boosts:    queriesmock.NewMockBoostReadStore(ctrl),
		users:     queriesmock.NewMockUserReadStore(ctrl),
	}
}

func (m *storeMocks) stores() queries.ReadStores {
	return queries.ReadStores{
		Posts:     m.posts,
		Media:     m.media,
		Merchants: m.merchants,
		Items:     m.items,
		Boosts:    m.boosts,
		Users:     m.users,
	}
}

func (m *storeMocks) expectReadOnly() {
	m.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		}).Times(1)
}

func (m *storeMocks) expectWithDB() {
	m.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		}).Times(1)
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

var (
	logoUUID = uuid.MustParse("0b6a3c1e-1d2f-4a5b-8c7d-9e0f1a2b3c4d")
	postUUID = uuid.MustParse("6f1c9a52-3a2b-4c1e-9d7e-2b8f0a4c5d6e")
	itemUUID = uuid.MustParse("a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d")
)

func fixtureMedia() map[int64]feed.MediaRecord {
	return map[int64]feed.MediaRecord{
		10: {ID: 10, StorageID: logoUUID, Name: "logo.png", MimeType: "image/png"},
		11: {ID: 11, StorageID: postUUID, Name: "latte.jpg", MimeType: "image/jpeg"},
		12: {ID: 12, StorageID: itemUUID, Name: "iced.jpg", MimeType: "image/jpeg"},
	}
}

func fixtureMerchants() map[int64]feed.MerchantRecord {
	return map[int64]feed.MerchantRecord{
		1: {ID: 1, Name: "Kopi Kenangan", LogoID: 10},
	}
}

func fixtureItems() map[int64]feed.ItemRecord {
	return map[int64]feed.ItemRecord{
		200: {ID: 200, Name: "Iced Latte", MediaID: 12, Price: 3500, Currency: "SGD"},
	}
}
