package commands

import (
	"context"

	"discover-api/internal/domain/post"
	"discover-api/internal/infra"
	"discover-api/internal/pkg/clock"
	"discover-api/internal/pkg/patch"
	"discover-api/internal/usecase/shared"
)

type CreatePostInput struct {
	MediaID int64
	Title   *string
	Items   []int64
}

// UpdatePostInput fields left nil keep their stored values. An empty title clears it.
type UpdatePostInput struct {
	MediaID *int64
	Title   *string
	Items   *[]int64
}

type PostCommands interface {
	Create(ctx context.Context, merchantID int64, in CreatePostInput) (int64, error)
	Update(ctx context.Context, postID int64, in UpdatePostInput) error
	Delete(ctx context.Context, postID int64) error
}

type postUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPostUseCase(uow shared.UnitOfWork, clk clock.Clock) PostCommands {
	return &postUseCaseImpl{uow: uow, clock: clk}
}

func (uc *postUseCaseImpl) Create(ctx context.Context, merchantID int64, in CreatePostInput) (int64, error) {
	p, err := post.NewPost(merchantID, in.MediaID, in.Title, in.Items, uc.clock.Now())
	if err != nil {
		return 0, invalidRequest(err)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().MerchantByID(ctx, merchantID); err != nil {
			return notFoundAs(err, ErrMerchantMissing)
		}
		if err := requireMedia(ctx, tx, p.MediaID(), ErrMediaMissing); err != nil {
			return err
		}
		created, err := tx.Posts().Create(ctx, tx.DB(), p)
		if err != nil {
			return mapPostWriteErr(err)
		}
		id = created
		return nil
	})
	return id, err
}

func (uc *postUseCaseImpl) Update(ctx context.Context, postID int64, in UpdatePostInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().PostByID(ctx, postID)
		if err != nil {
			return notFoundAs(err, ErrPostMissing)
		}

		p := post.Reconstruct(snap.ID, snap.MerchantID, snap.MediaID, snap.Title, snap.DatePosted, snap.ItemIDs)
		mediaID := patch.Coalesce(in.MediaID, snap.MediaID)
		title := patch.CoalescePtr(in.Title, snap.Title)
		items := patch.Coalesce(in.Items, snap.ItemIDs)
		if err := p.Replace(mediaID, title, items); err != nil {
			return invalidRequest(err)
		}
		if mediaID != snap.MediaID {
			if err := requireMedia(ctx, tx, mediaID, ErrMediaMissing); err != nil {
				return err
			}
		}

		if err := tx.Posts().Update(ctx, tx.DB(), p); err != nil {
			return mapPostWriteErr(err)
		}
		return nil
	})
}

// Delete cascades to the post's boosts.
func (uc *postUseCaseImpl) Delete(ctx context.Context, postID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Posts().Delete(ctx, tx.DB(), postID); err != nil {
			return notFoundAs(err, ErrPostMissing)
		}
		return nil
	})
}

func mapPostWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrMediaMissing
	case infra.IsKind(err, infra.KindNotFound):
		return ErrPostMissing
	default:
		return err
	}
}
