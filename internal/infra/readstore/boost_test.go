//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	sqlc "discover-api/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBoostReadQueries struct {
	mock.Mock
}

func (m *MockBoostReadQueries) GetLatestBoostEnds(ctx context.Context, db sqlc.DBTX, postIds []int64) ([]sqlc.GetLatestBoostEndsRow, error) {
	args := m.Called(ctx, db, postIds)
	return args.Get(0).([]sqlc.GetLatestBoostEndsRow), args.Error(1)
}

func (m *MockBoostReadQueries) HasActiveBoost(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (bool, error) {
	args := m.Called(ctx, db, now)
	return args.Bool(0), args.Error(1)
}

func TestBoostReadStore_LatestEnds(t *testing.T) {
	end := time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)
	mockQueries := new(MockBoostReadQueries)
	mockQueries.On("GetLatestBoostEnds", mock.Anything, mock.Anything, []int64{1, 2}).
		Return([]sqlc.GetLatestBoostEndsRow{{PostID: 2, EndTime: pgtype.Timestamptz{Time: end, Valid: true}}}, nil)

	got, err := NewBoostReadStore(mockQueries).LatestEnds(context.Background(), nil, []int64{1, 2})

	require.NoError(t, err)
	assert.Equal(t, map[int64]time.Time{2: end}, got)
}

func TestBoostReadStore_HasActive(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockQueries := new(MockBoostReadQueries)
	mockQueries.On("HasActiveBoost", mock.Anything, mock.Anything, pgtype.Timestamptz{Time: now, Valid: true}).Return(true, nil)

	active, err := NewBoostReadStore(mockQueries).HasActive(context.Background(), nil, now)

	require.NoError(t, err)
	assert.True(t, active)
	mockQueries.AssertExpectations(t)
}
