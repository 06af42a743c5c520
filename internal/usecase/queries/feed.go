package queries

import (
	"context"
	"errors"
	"log/slog"

	"discover-api/internal/domain/feed"
	"discover-api/internal/domain/media"
	"discover-api/internal/infra"
	"discover-api/internal/infra/metrics"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/pkg/clock"
	"discover-api/internal/pkg/errs"
	"discover-api/internal/usecase/shared"
)

var (
	ErrPostNotFound         = errs.NotFound("post not found")
	ErrPostMediaNotFound    = errs.NotFound("post media not found")
	ErrPostMerchantNotFound = errs.NotFound("post merchant not found")
	ErrMerchantLogoNotFound = errs.NotFound("merchant logo not found")
	ErrInvalidCursor        = errs.InvalidRequest("invalid cursor")
)

const (
	feedScopeDiscover = "discover"
	feedScopeMerchant = "merchant"
	feedScopePost     = "post"
)

type FeedQueries interface {
	// Discover returns every post newest first. A positive Limit or an After
	// cursor switches to keyset pages.
	Discover(ctx context.Context, page PageRequest) (*FeedPage, error)
	ByMerchant(ctx context.Context, merchantID int64) ([]feed.Entry, error)
	GetPost(ctx context.Context, postID int64) (*feed.Entry, error)
}

type feedQueriesImpl struct {
	uow      shared.UnitOfWork
	stores   ReadStores
	composer *feed.Composer
	clock    clock.Clock
}

func NewFeedQueries(uow shared.UnitOfWork, stores ReadStores, resolver media.URLResolver, clk clock.Clock) FeedQueries {
	return &feedQueriesImpl{
		uow:      uow,
		stores:   stores,
		composer: feed.NewComposer(resolver),
		clock:    clk,
	}
}

func (q *feedQueriesImpl) Discover(ctx context.Context, page PageRequest) (*FeedPage, error) {
	var result FeedPage
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		posts, next, err := q.discoverPosts(ctx, db, page)
		if err != nil {
			return err
		}
		entries, err := q.compose(ctx, db, posts)
		if err != nil {
			return err
		}
		result = FeedPage{Posts: entries, Next: next}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.RecordFeed(feedScopeDiscover, len(result.Posts))
	return &result, nil
}

func (q *feedQueriesImpl) discoverPosts(ctx context.Context, db sqlc.DBTX, page PageRequest) ([]feed.PostRecord, *Cursor, error) {
	if !page.Paged() {
		posts, err := q.stores.Posts.FindAll(ctx, db)
		return posts, nil, err
	}

	limit := ValidateLimit(page.Limit)
	var posts []feed.PostRecord
	var err error
	if page.After == "" {
		posts, err = q.stores.Posts.FindFirstPage(ctx, db, int32(limit+1))
	} else {
		lastDatePosted, lastID, derr := DecodeAfterCursor(page.After)
		if derr != nil {
			return nil, nil, errs.Wrap(ErrInvalidCursor, derr.Error())
		}
		posts, err = q.stores.Posts.FindKeyset(ctx, db, lastDatePosted, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(posts) > limit {
		last := posts[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.DatePosted, last.ID)}
		posts = posts[:limit]
	}
	return posts, next, nil
}

func (q *feedQueriesImpl) ByMerchant(ctx context.Context, merchantID int64) ([]feed.Entry, error) {
	var entries []feed.Entry
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		if _, err := q.stores.Merchants.FindByID(ctx, db, merchantID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMerchantNotFound
			}
			return err
		}
		posts, err := q.stores.Posts.FindByMerchant(ctx, db, merchantID)
		if err != nil {
			return err
		}
		entries, err = q.compose(ctx, db, posts)
		return err
	})
	if err != nil {
		return nil, err
	}
	metrics.RecordFeed(feedScopeMerchant, len(entries))
	return entries, nil
}

func (q *feedQueriesImpl) GetPost(ctx context.Context, postID int64) (*feed.Entry, error) {
	var entry feed.Entry
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		p, err := q.stores.Posts.FindByID(ctx, db, postID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPostNotFound
			}
			return err
		}
		entries, err := q.compose(ctx, db, []feed.PostRecord{*p})
		if err != nil {
			return err
		}
		entry = entries[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.RecordFeed(feedScopePost, 1)
	return &entry, nil
}

// compose loads every referenced row with one batch lookup per table and
// hands the maps to the pure composer.
func (q *feedQueriesImpl) compose(ctx context.Context, db sqlc.DBTX, posts []feed.PostRecord) ([]feed.Entry, error) {
	if len(posts) == 0 {
		return []feed.Entry{}, nil
	}

	merchants, err := q.stores.Merchants.FindByIDs(ctx, db, feed.MerchantIDs(posts))
	if err != nil {
		return nil, err
	}
	items, err := q.stores.Items.FindByIDs(ctx, db, feed.ItemIDs(posts))
	if err != nil {
		return nil, err
	}
	boostEnds, err := q.stores.Boosts.LatestEnds(ctx, db, feed.PostIDs(posts))
	if err != nil {
		return nil, err
	}
	mediaByID, err := q.stores.Media.FindByIDs(ctx, db, feed.MediaIDs(posts, merchants, items))
	if err != nil {
		return nil, err
	}

	src := feed.Sources{
		Media:     mediaByID,
		Merchants: merchants,
		Items:     items,
		BoostEnds: boostEnds,
	}
	entries, err := q.composer.Compose(posts, src, q.clock.Now())
	if err != nil {
		return nil, toFeedError(err)
	}
	return entries, nil
}

// toFeedError maps a composition failure onto the matching NotFound sentinel.
// The composer's message names the dangling reference, so it is logged here.
func toFeedError(err error) error {
	var sentinel error
	switch {
	case errors.Is(err, feed.ErrMediaNotFound):
		sentinel = ErrPostMediaNotFound
	case errors.Is(err, feed.ErrMerchantNotFound):
		sentinel = ErrPostMerchantNotFound
	case errors.Is(err, feed.ErrLogoNotFound):
		sentinel = ErrMerchantLogoNotFound
	default:
		return err
	}
	slog.Warn("feed composition failed", "detail", err.Error())
	return sentinel
}
