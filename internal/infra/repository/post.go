package repository

import (
	"context"

	"discover-api/internal/domain/post"
	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/pkg/pgconv"
)

type PostWriteQueries interface {
	CreatePost(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePostParams) (sqlc.Posts, error)
	UpdatePost(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePostParams) (int64, error)
	DeletePost(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type PostRepository struct {
	queries PostWriteQueries
}

func NewPostRepository(queries PostWriteQueries) *PostRepository {
	return &PostRepository{queries: queries}
}

func (r *PostRepository) Create(ctx context.Context, tx sqlc.DBTX, p *post.Post) (int64, error) {
	params := sqlc.CreatePostParams{
		UserID:     p.MerchantID(),
		MediaID:    p.MediaID(),
		Title:      pgconv.StringPtrToPgtype(p.Title()),
		DatePosted: pgconv.TimeToPgtype(p.DatePosted()),
		Items:      nonNilIDs(p.ItemIDs()),
	}
	row, err := r.queries.CreatePost(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create post", err)
	}
	return row.ID, nil
}

func (r *PostRepository) Update(ctx context.Context, tx sqlc.DBTX, p *post.Post) error {
	params := sqlc.UpdatePostParams{
		ID:      p.ID(),
		MediaID: p.MediaID(),
		Title:   pgconv.StringPtrToPgtype(p.Title()),
		Items:   nonNilIDs(p.ItemIDs()),
	}
	n, err := r.queries.UpdatePost(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update post", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("post not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.DeletePost(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete post", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("post not found", nil, infra.KindNotFound)
	}
	return nil
}

// pgx encodes a nil slice as NULL, which the NOT NULL items column rejects.
func nonNilIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
