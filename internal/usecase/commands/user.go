package commands

import (
	"context"

	"discover-api/internal/domain/user"
	"discover-api/internal/infra"
	"discover-api/internal/usecase/shared"
)

type CreateUserInput struct {
	Name      string
	ProfileID *int64
}

type UserCommands interface {
	Create(ctx context.Context, in CreateUserInput) (int64, error)
}

type userUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewUserUseCase(uow shared.UnitOfWork) UserCommands {
	return &userUseCaseImpl{uow: uow}
}

func (uc *userUseCaseImpl) Create(ctx context.Context, in CreateUserInput) (int64, error) {
	u, err := user.NewUser(in.Name, in.ProfileID)
	if err != nil {
		return 0, invalidRequest(err)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if profileID := u.ProfileID(); profileID != nil {
			if err := requireMedia(ctx, tx, *profileID, ErrProfileMissing); err != nil {
				return err
			}
		}
		created, err := tx.Users().Create(ctx, tx.DB(), u)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrProfileMissing
			}
			return err
		}
		id = created
		return nil
	})
	return id, err
}
