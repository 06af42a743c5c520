//go:build unit

package commands_test

import (
	"context"

	"discover-api/internal/infra"
	"discover-api/internal/usecase/shared"
	sharedmock "discover-api/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// txMocks wires a mocked unit of work whose Within runs the callback
// against mocked repositories.
type txMocks struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	reads     *sharedmock.MockCommandReads
	media     *sharedmock.MockMediaRepository
	merchants *sharedmock.MockMerchantRepository
	posts     *sharedmock.MockPostRepository
	items     *sharedmock.MockItemRepository
	boosts    *sharedmock.MockBoostRepository
	users     *sharedmock.MockUserRepository
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		reads:     sharedmock.NewMockCommandReads(ctrl),
		media:     sharedmock.NewMockMediaRepository(ctrl),
		merchants: sharedmock.NewMockMerchantRepository(ctrl),
		posts:     sharedmock.NewMockPostRepository(ctrl),
		items:     sharedmock.NewMockItemRepository(ctrl),
		boosts:    sharedmock.NewMockBoostRepository(ctrl),
		users:     sharedmock.NewMockUserRepository(ctrl),
	}
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Media().Return(m.media).AnyTimes()
	m.tx.EXPECT().Merchants().Return(m.merchants).AnyTimes()
	m.tx.EXPECT().Posts().Return(m.posts).AnyTimes()
	m.tx.EXPECT().Items().Return(m.items).AnyTimes()
	m.tx.EXPECT().Boosts().Return(m.boosts).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	return m
}

func (m *txMocks) expectWithin() {
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).Times(1)
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func fkViolation() error {
	return infra.WrapRepoErr("foreign key violated", nil, infra.KindForeignKeyViolated)
}

func duplicateKey() error {
	return infra.WrapRepoErr("duplicate key", nil, infra.KindDuplicateKey)
}
