package commands

import (
	"context"
	"time"

	"discover-api/internal/domain/boost"
	"discover-api/internal/infra"
	"discover-api/internal/infra/metrics"
	"discover-api/internal/pkg/clock"
	"discover-api/internal/pkg/config"
	"discover-api/internal/pkg/errs"
	"discover-api/internal/usecase/shared"
)

type BoostResult struct {
	ID      int64
	PostID  int64
	EndTime time.Time
}

type BoostCommands interface {
	// Request admits a boost for postID lasting days calendar days. Only one
	// boost may be active across the whole system.
	Request(ctx context.Context, postID int64, days int) (*BoostResult, error)
}

type boostUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	maxDays int
}

func NewBoostUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.BoostConfig) BoostCommands {
	return &boostUseCaseImpl{uow: uow, clock: clk, maxDays: cfg.MaxDays}
}

func (uc *boostUseCaseImpl) Request(ctx context.Context, postID int64, days int) (*BoostResult, error) {
	if err := boost.ValidateDuration(days, uc.maxDays); err != nil {
		metrics.RecordBoostAdmission("invalid")
		return nil, invalidRequest(err)
	}

	var created *boost.Boost
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Boosts().LockAdmission(ctx, tx.DB()); err != nil {
			return err
		}

		// read the clock only once the lock is held
		now := uc.clock.Now()
		active, err := tx.Reads().ActiveBoostExists(ctx, now)
		if err != nil {
			return err
		}
		if err := boost.Admit(active); err != nil {
			return ErrBoostActive
		}

		if _, err := tx.Reads().PostByID(ctx, postID); err != nil {
			return notFoundAs(err, ErrPostMissing)
		}

		b, err := boost.NewBoost(postID, days, uc.maxDays, now)
		if err != nil {
			return invalidRequest(err)
		}
		created, err = tx.Boosts().Create(ctx, tx.DB(), b)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrPostMissing
			}
			return err
		}
		return nil
	})
	metrics.RecordBoostAdmission(boostOutcome(err))
	if err != nil {
		return nil, err
	}

	return &BoostResult{
		ID:      created.ID(),
		PostID:  created.PostID(),
		EndTime: created.EndTime(),
	}, nil
}

func boostOutcome(err error) string {
	switch {
	case err == nil:
		return "admitted"
	case errs.Is(err, errs.ErrConflict):
		return "conflict"
	case errs.Is(err, errs.ErrNotFound):
		return "not_found"
	case errs.Is(err, errs.ErrInvalidRequest):
		return "invalid"
	default:
		return "error"
	}
}
