package commands

import (
	"context"

	"discover-api/internal/domain/merchant"
	"discover-api/internal/infra"
	"discover-api/internal/pkg/patch"
	"discover-api/internal/usecase/shared"
)

type CreateMerchantInput struct {
	Name   string
	LogoID int64
}

// UpdateMerchantInput fields left nil keep their stored values.
type UpdateMerchantInput struct {
	Name   *string
	LogoID *int64
}

type MerchantCommands interface {
	Create(ctx context.Context, in CreateMerchantInput) (int64, error)
	Update(ctx context.Context, id int64, in UpdateMerchantInput) error
	Delete(ctx context.Context, id int64) error
}

type merchantUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewMerchantUseCase(uow shared.UnitOfWork) MerchantCommands {
	return &merchantUseCaseImpl{uow: uow}
}

func (uc *merchantUseCaseImpl) Create(ctx context.Context, in CreateMerchantInput) (int64, error) {
	m, err := merchant.NewMerchant(in.Name, in.LogoID)
	if err != nil {
		return 0, invalidRequest(err)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireMedia(ctx, tx, m.LogoID(), ErrLogoMissing); err != nil {
			return err
		}
		created, err := tx.Merchants().Create(ctx, tx.DB(), m)
		if err != nil {
			return mapMerchantWriteErr(err)
		}
		id = created
		return nil
	})
	return id, err
}

func (uc *merchantUseCaseImpl) Update(ctx context.Context, id int64, in UpdateMerchantInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().MerchantByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrMerchantMissing)
		}

		m := merchant.Reconstruct(snap.ID, snap.Name, snap.LogoID)
		if err := m.Rename(patch.Coalesce(in.Name, snap.Name), patch.Coalesce(in.LogoID, snap.LogoID)); err != nil {
			return invalidRequest(err)
		}
		if m.LogoID() != snap.LogoID {
			if err := requireMedia(ctx, tx, m.LogoID(), ErrLogoMissing); err != nil {
				return err
			}
		}

		if err := tx.Merchants().Update(ctx, tx.DB(), m); err != nil {
			return mapMerchantWriteErr(err)
		}
		return nil
	})
}

// Delete cascades to the merchant's posts, items and their boosts.
func (uc *merchantUseCaseImpl) Delete(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Merchants().Delete(ctx, tx.DB(), id); err != nil {
			return notFoundAs(err, ErrMerchantMissing)
		}
		return nil
	})
}

func mapMerchantWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrMerchantNameTaken
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrLogoMissing
	case infra.IsKind(err, infra.KindNotFound):
		return ErrMerchantMissing
	default:
		return err
	}
}

func requireMedia(ctx context.Context, tx shared.Tx, mediaID int64, sentinel error) error {
	ok, err := tx.Reads().MediaExists(ctx, mediaID)
	if err != nil {
		return err
	}
	if !ok {
		return sentinel
	}
	return nil
}
