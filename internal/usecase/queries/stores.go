package queries

import (
	"context"
	"time"

	"discover-api/internal/domain/feed"
	sqlc "discover-api/internal/infra/sqlc/generated"
)

// Read stores take the db handle per call so that one read-only transaction
// can span several of them.

type PostReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*feed.PostRecord, error)
	FindAll(ctx context.Context, db sqlc.DBTX) ([]feed.PostRecord, error)
	FindFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]feed.PostRecord, error)
	FindKeyset(ctx context.Context, db sqlc.DBTX, lastDatePosted time.Time, lastID int64, limit int32) ([]feed.PostRecord, error)
	FindByMerchant(ctx context.Context, db sqlc.DBTX, merchantID int64) ([]feed.PostRecord, error)
}

type MediaReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*MediaRecordView, error)
	FindByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) (map[int64]feed.MediaRecord, error)
}

type MerchantReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*feed.MerchantRecord, error)
	FindByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) (map[int64]feed.MerchantRecord, error)
}

type ItemReadStore interface {
	FindByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) (map[int64]feed.ItemRecord, error)
	FindByMerchant(ctx context.Context, db sqlc.DBTX, merchantID int64) ([]feed.ItemRecord, error)
}

type BoostReadStore interface {
	LatestEnds(ctx context.Context, db sqlc.DBTX, postIDs []int64) (map[int64]time.Time, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*UserRecordView, error)
}

type ReadStores struct {
	Posts     PostReadStore
	Media     MediaReadStore
	Merchants MerchantReadStore
	Items     ItemReadStore
	Boosts    BoostReadStore
	Users     UserReadStore
}
