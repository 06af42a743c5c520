package readstore

import (
	"context"
	"time"

	"discover-api/internal/domain/feed"
	"discover-api/internal/infra"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/pkg/pgconv"
)

type PostReadQueries interface {
	GetPostByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Posts, error)
	ListPosts(ctx context.Context, db sqlc.DBTX) ([]sqlc.Posts, error)
	ListPostsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Posts, error)
	ListPostsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPostsKeysetParams) ([]sqlc.Posts, error)
	ListPostsByMerchant(ctx context.Context, db sqlc.DBTX, userID int64) ([]sqlc.Posts, error)
}

type PostReadStore struct {
	queries PostReadQueries
}

func NewPostReadStore(queries PostReadQueries) *PostReadStore {
	return &PostReadStore{queries: queries}
}

func (r *PostReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*feed.PostRecord, error) {
	row, err := r.queries.GetPostByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("post not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get post by id", err)
	}
	rec := toPostRecord(row)
	return &rec, nil
}

func (r *PostReadStore) FindAll(ctx context.Context, db sqlc.DBTX) ([]feed.PostRecord, error) {
	rows, err := r.queries.ListPosts(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list posts", err)
	}
	return toPostRecords(rows), nil
}

func (r *PostReadStore) FindFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]feed.PostRecord, error) {
	rows, err := r.queries.ListPostsFirstPage(ctx, db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list posts first page", err)
	}
	return toPostRecords(rows), nil
}

func (r *PostReadStore) FindKeyset(ctx context.Context, db sqlc.DBTX, lastDatePosted time.Time, lastID int64, limit int32) ([]feed.PostRecord, error) {
	params := sqlc.ListPostsKeysetParams{
		DatePosted: pgconv.TimeToPgtype(lastDatePosted),
		ID:         lastID,
		RowLimit:   limit,
	}
	rows, err := r.queries.ListPostsKeyset(ctx, db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list posts keyset", err)
	}
	return toPostRecords(rows), nil
}

func (r *PostReadStore) FindByMerchant(ctx context.Context, db sqlc.DBTX, merchantID int64) ([]feed.PostRecord, error) {
	rows, err := r.queries.ListPostsByMerchant(ctx, db, merchantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list posts by merchant", err)
	}
	return toPostRecords(rows), nil
}

func toPostRecords(rows []sqlc.Posts) []feed.PostRecord {
	result := make([]feed.PostRecord, len(rows))
	for i, row := range rows {
		result[i] = toPostRecord(row)
	}
	return result
}

func toPostRecord(row sqlc.Posts) feed.PostRecord {
	return feed.PostRecord{
		ID:         row.ID,
		MerchantID: row.UserID,
		MediaID:    row.MediaID,
		Title:      pgconv.StringPtrFromPgtype(row.Title),
		DatePosted: pgconv.TimeFromPgtype(row.DatePosted),
		ItemIDs:    row.Items,
	}
}
