package commands

import (
	"context"

	"discover-api/internal/domain/item"
	"discover-api/internal/infra"
	"discover-api/internal/pkg/patch"
	"discover-api/internal/usecase/shared"
)

type CreateItemInput struct {
	Name        string
	MediaID     int64
	Price       int64
	Currency    string
	Description string
}

type UpdateItemInput struct {
	Name        *string
	MediaID     *int64
	Price       *int64
	Currency    *string
	Description *string
}

type ItemCommands interface {
	Create(ctx context.Context, merchantID int64, in CreateItemInput) (int64, error)
	Update(ctx context.Context, itemID int64, in UpdateItemInput) error
	Delete(ctx context.Context, itemID int64) error
}

type itemUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewItemUseCase(uow shared.UnitOfWork) ItemCommands {
	return &itemUseCaseImpl{uow: uow}
}

func (uc *itemUseCaseImpl) Create(ctx context.Context, merchantID int64, in CreateItemInput) (int64, error) {
	it, err := item.NewItem(merchantID, item.Fields{
		Name:        in.Name,
		MediaID:     in.MediaID,
		Price:       in.Price,
		Currency:    in.Currency,
		Description: in.Description,
	})
	if err != nil {
		return 0, invalidRequest(err)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().MerchantByID(ctx, merchantID); err != nil {
			return notFoundAs(err, ErrMerchantMissing)
		}
		if err := requireMedia(ctx, tx, it.MediaID(), ErrMediaMissing); err != nil {
			return err
		}
		created, err := tx.Items().Create(ctx, tx.DB(), it)
		if err != nil {
			return mapItemWriteErr(err)
		}
		id = created
		return nil
	})
	return id, err
}

func (uc *itemUseCaseImpl) Update(ctx context.Context, itemID int64, in UpdateItemInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ItemByID(ctx, itemID)
		if err != nil {
			return notFoundAs(err, ErrItemMissing)
		}

		current := item.Fields{
			Name:        snap.Name,
			MediaID:     snap.MediaID,
			Price:       snap.Price,
			Currency:    snap.Currency,
			Description: snap.Description,
		}
		it := item.Reconstruct(snap.ID, snap.MerchantID, current)
		next := item.Fields{
			Name:        patch.Coalesce(in.Name, current.Name),
			MediaID:     patch.Coalesce(in.MediaID, current.MediaID),
			Price:       patch.Coalesce(in.Price, current.Price),
			Currency:    patch.Coalesce(in.Currency, current.Currency),
			Description: patch.Coalesce(in.Description, current.Description),
		}
		if err := it.Replace(next); err != nil {
			return invalidRequest(err)
		}
		if it.MediaID() != snap.MediaID {
			if err := requireMedia(ctx, tx, it.MediaID(), ErrMediaMissing); err != nil {
				return err
			}
		}

		if err := tx.Items().Update(ctx, tx.DB(), it); err != nil {
			return mapItemWriteErr(err)
		}
		return nil
	})
}

// Delete leaves the item id in any post that lists it; feeds skip it from then on.
func (uc *itemUseCaseImpl) Delete(ctx context.Context, itemID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Items().Delete(ctx, tx.DB(), itemID); err != nil {
			return notFoundAs(err, ErrItemMissing)
		}
		return nil
	})
}

func mapItemWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrMediaMissing
	case infra.IsKind(err, infra.KindNotFound):
		return ErrItemMissing
	default:
		return err
	}
}
