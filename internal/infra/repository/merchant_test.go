//go:build unit

package repository

import (
	"context"
	"testing"

	"discover-api/internal/domain/merchant"
	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMerchantWriteQueries struct {
	mock.Mock
}

func (m *MockMerchantWriteQueries) CreateMerchant(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMerchantParams) (sqlc.Merchants, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Merchants), args.Error(1)
}

func (m *MockMerchantWriteQueries) UpdateMerchant(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMerchantParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMerchantWriteQueries) DeleteMerchant(ctx context.Context, db sqlc.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestMerchantRepository_Create(t *testing.T) {
	m, err := merchant.NewMerchant("Kopi Kenangan", 10)
	require.NoError(t, err)
	params := sqlc.CreateMerchantParams{Name: "Kopi Kenangan", LogoID: 10}

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "duplicate name", mockError: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "logo missing", mockError: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockMerchantWriteQueries)
			mockQueries.On("CreateMerchant", mock.Anything, mock.Anything, params).
				Return(sqlc.Merchants{ID: 1, Name: params.Name, LogoID: params.LogoID}, tt.mockError)

			id, err := NewMerchantRepository(mockQueries).Create(context.Background(), nil, m)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), id)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestMerchantRepository_UpdateAndDelete(t *testing.T) {
	m := merchant.Reconstruct(7, "Kopi", 10)

	t.Run("update of missing row is not found", func(t *testing.T) {
		mockQueries := new(MockMerchantWriteQueries)
		mockQueries.On("UpdateMerchant", mock.Anything, mock.Anything, sqlc.UpdateMerchantParams{ID: 7, Name: "Kopi", LogoID: 10}).
			Return(int64(0), nil)

		err := NewMerchantRepository(mockQueries).Update(context.Background(), nil, m)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("delete affects one row", func(t *testing.T) {
		mockQueries := new(MockMerchantWriteQueries)
		mockQueries.On("DeleteMerchant", mock.Anything, mock.Anything, int64(7)).Return(int64(1), nil)

		assert.NoError(t, NewMerchantRepository(mockQueries).Delete(context.Background(), nil, 7))
	})

	t.Run("delete of missing row is not found", func(t *testing.T) {
		mockQueries := new(MockMerchantWriteQueries)
		mockQueries.On("DeleteMerchant", mock.Anything, mock.Anything, int64(7)).Return(int64(0), nil)

		err := NewMerchantRepository(mockQueries).Delete(context.Background(), nil, 7)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
