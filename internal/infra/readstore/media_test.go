//go:build unit

package readstore

import (
	"context"
	"testing"

	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMediaReadQueries struct {
	mock.Mock
}

func (m *MockMediaReadQueries) GetMediaByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Media, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Media), args.Error(1)
}

func (m *MockMediaReadQueries) GetMediaByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) ([]sqlc.Media, error) {
	args := m.Called(ctx, db, ids)
	return args.Get(0).([]sqlc.Media), args.Error(1)
}

func (m *MockMediaReadQueries) MediaExists(ctx context.Context, db sqlc.DBTX, id int64) (bool, error) {
	args := m.Called(ctx, db, id)
	return args.Bool(0), args.Error(1)
}

func TestMediaReadStore_FindByID(t *testing.T) {
	b := builder.NewMediaBuilder()

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockMediaReadQueries)
		mockQueries.On("GetMediaByID", mock.Anything, mock.Anything, b.ID).Return(b.BuildInfra(), nil)

		got, err := NewMediaReadStore(mockQueries).FindByID(context.Background(), nil, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.BuildRecordView(), got)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockMediaReadQueries)
		mockQueries.On("GetMediaByID", mock.Anything, mock.Anything, int64(99)).Return(sqlc.Media{}, pgx.ErrNoRows)

		_, err := NewMediaReadStore(mockQueries).FindByID(context.Background(), nil, 99)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestMediaReadStore_FindByIDs(t *testing.T) {
	t.Run("no ids skips the query", func(t *testing.T) {
		mockQueries := new(MockMediaReadQueries)

		got, err := NewMediaReadStore(mockQueries).FindByIDs(context.Background(), nil, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
		mockQueries.AssertNotCalled(t, "GetMediaByIDs", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing ids are absent from the map", func(t *testing.T) {
		mockQueries := new(MockMediaReadQueries)
		found := builder.NewMediaBuilder().WithID(10)
		mockQueries.On("GetMediaByIDs", mock.Anything, mock.Anything, []int64{10, 11}).
			Return([]sqlc.Media{found.BuildInfra()}, nil)

		got, err := NewMediaReadStore(mockQueries).FindByIDs(context.Background(), nil, []int64{10, 11})
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, found.BuildRecord(), got[10])
		_, ok := got[11]
		assert.False(t, ok)
	})
}

func TestMediaReadStore_Exists(t *testing.T) {
	mockQueries := new(MockMediaReadQueries)
	mockQueries.On("MediaExists", mock.Anything, mock.Anything, int64(10)).Return(false, assert.AnError)

	_, err := NewMediaReadStore(mockQueries).Exists(context.Background(), nil, 10)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
