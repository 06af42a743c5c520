package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"discover-api/internal/infra/readstore"
	"discover-api/internal/infra/repository"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/pkg/errs"
	"discover-api/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxTxRetries = 3
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

// Each attempt owns its transaction, so nothing is deferred across retries.
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	attempts := 0
	operation := func() error {
		attempts++
		err := u.attempt(ctx, options, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempts,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
	}

	err := backoff.RetryNotify(operation, u.retryPolicy(ctx), notify)
	if err != nil && isRetryableError(err) {
		slog.Error("transaction failed after max retries", "attempts", attempts, "error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", rollbackErr.Error())
	}
	return err
}

func (u *PostgresUoW) retryPolicy(ctx context.Context) backoff.BackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.RandomizationFactor = 0.2
	policy.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(policy, maxTxRetries), ctx)
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	mediaRepo    shared.MediaRepository
	merchantRepo shared.MerchantRepository
	postRepo     shared.PostRepository
	itemRepo     shared.ItemRepository
	boostRepo    shared.BoostRepository
	userRepo     shared.UserRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Media() shared.MediaRepository {
	if t.mediaRepo == nil {
		t.mediaRepo = repository.NewMediaRepository(t.uow.q)
	}
	return t.mediaRepo
}

func (t *pgTx) Merchants() shared.MerchantRepository {
	if t.merchantRepo == nil {
		t.merchantRepo = repository.NewMerchantRepository(t.uow.q)
	}
	return t.merchantRepo
}

func (t *pgTx) Posts() shared.PostRepository {
	if t.postRepo == nil {
		t.postRepo = repository.NewPostRepository(t.uow.q)
	}
	return t.postRepo
}

func (t *pgTx) Items() shared.ItemRepository {
	if t.itemRepo == nil {
		t.itemRepo = repository.NewItemRepository(t.uow.q)
	}
	return t.itemRepo
}

func (t *pgTx) Boosts() shared.BoostRepository {
	if t.boostRepo == nil {
		t.boostRepo = repository.NewBoostRepository(t.uow.q)
	}
	return t.boostRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.uow.q, t.dbtx)
	}
	return t.commandReads
}

// commandReads answers the existence and snapshot lookups commands need,
// bound to either the pool or an open transaction.
type commandReads struct {
	dbtx sqlc.DBTX

	media     *readstore.MediaReadStore
	merchants *readstore.MerchantReadStore
	posts     *readstore.PostReadStore
	items     *readstore.ItemReadStore
	boosts    *readstore.BoostReadStore
}

func newCommandReads(q *sqlc.Queries, dbtx sqlc.DBTX) *commandReads {
	return &commandReads{
		dbtx:      dbtx,
		media:     readstore.NewMediaReadStore(q),
		merchants: readstore.NewMerchantReadStore(q),
		posts:     readstore.NewPostReadStore(q),
		items:     readstore.NewItemReadStore(q),
		boosts:    readstore.NewBoostReadStore(q),
	}
}

func (r *commandReads) MediaExists(ctx context.Context, id int64) (bool, error) {
	return r.media.Exists(ctx, r.dbtx, id)
}

func (r *commandReads) MerchantByID(ctx context.Context, id int64) (*shared.MerchantSnapshot, error) {
	m, err := r.merchants.FindByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, err
	}
	return &shared.MerchantSnapshot{
		ID:     m.ID,
		Name:   m.Name,
		LogoID: m.LogoID,
	}, nil
}

func (r *commandReads) PostByID(ctx context.Context, id int64) (*shared.PostSnapshot, error) {
	p, err := r.posts.FindByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, err
	}
	return &shared.PostSnapshot{
		ID:         p.ID,
		MerchantID: p.MerchantID,
		MediaID:    p.MediaID,
		Title:      p.Title,
		DatePosted: p.DatePosted,
		ItemIDs:    p.ItemIDs,
	}, nil
}

func (r *commandReads) ItemByID(ctx context.Context, id int64) (*shared.ItemSnapshot, error) {
	it, err := r.items.FindByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ItemSnapshot{
		ID:          it.ID,
		MerchantID:  it.MerchantID,
		Name:        it.Name,
		MediaID:     it.MediaID,
		Price:       it.Price,
		Currency:    it.Currency,
		Description: it.Description,
	}, nil
}

func (r *commandReads) ActiveBoostExists(ctx context.Context, now time.Time) (bool, error) {
	return r.boosts.HasActive(ctx, r.dbtx, now)
}
