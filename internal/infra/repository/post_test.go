//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"discover-api/internal/domain/post"
	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPostWriteQueries struct {
	mock.Mock
}

func (m *MockPostWriteQueries) CreatePost(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePostParams) (sqlc.Posts, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Posts), args.Error(1)
}

func (m *MockPostWriteQueries) UpdatePost(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePostParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostWriteQueries) DeletePost(ctx context.Context, db sqlc.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestPostRepository_Create(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	title := "Seasonal"

	tests := []struct {
		name      string
		title     *string
		items     []int64
		wantTitle pgtype.Text
	}{
		{name: "title and items", title: &title, items: []int64{200, 201}, wantTitle: pgtype.Text{String: "Seasonal", Valid: true}},
		{name: "null title and no items", title: nil, items: nil, wantTitle: pgtype.Text{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := post.NewPost(1, 11, tt.title, tt.items, now)
			require.NoError(t, err)

			wantItems := tt.items
			if wantItems == nil {
				wantItems = []int64{}
			}
			mockQueries := new(MockPostWriteQueries)
			mockQueries.On("CreatePost", mock.Anything, mock.Anything, sqlc.CreatePostParams{
				UserID:     1,
				MediaID:    11,
				Title:      tt.wantTitle,
				DatePosted: pgtype.Timestamptz{Time: now, Valid: true},
				Items:      wantItems,
			}).Return(sqlc.Posts{ID: 100}, nil)

			id, err := NewPostRepository(mockQueries).Create(context.Background(), nil, p)
			require.NoError(t, err)
			assert.Equal(t, int64(100), id)
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestPostRepository_Update(t *testing.T) {
	p := post.Reconstruct(100, 1, 11, nil, time.Now(), []int64{200})

	t.Run("missing row", func(t *testing.T) {
		mockQueries := new(MockPostWriteQueries)
		mockQueries.On("UpdatePost", mock.Anything, mock.Anything, mock.AnythingOfType("sqlc.UpdatePostParams")).Return(int64(0), nil)

		err := NewPostRepository(mockQueries).Update(context.Background(), nil, p)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockPostWriteQueries)
		mockQueries.On("UpdatePost", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

		err := NewPostRepository(mockQueries).Update(context.Background(), nil, p)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
