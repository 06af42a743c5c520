package shared

import (
	"context"
	"time"

	"discover-api/internal/domain/boost"
	"discover-api/internal/domain/item"
	"discover-api/internal/domain/media"
	"discover-api/internal/domain/merchant"
	"discover-api/internal/domain/post"
	"discover-api/internal/domain/user"
	sqlc "discover-api/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Media() MediaRepository
	Merchants() MerchantRepository
	Posts() PostRepository
	Items() ItemRepository
	Boosts() BoostRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	MediaExists(ctx context.Context, id int64) (bool, error)
	MerchantByID(ctx context.Context, id int64) (*MerchantSnapshot, error)
	PostByID(ctx context.Context, id int64) (*PostSnapshot, error)
	ItemByID(ctx context.Context, id int64) (*ItemSnapshot, error)
	ActiveBoostExists(ctx context.Context, now time.Time) (bool, error)
}

type MediaRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, m *media.Media) (int64, error)
}

type MerchantRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, m *merchant.Merchant) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, m *merchant.Merchant) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type PostRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *post.Post) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, p *post.Post) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, it *item.Item) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, it *item.Item) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type BoostRepository interface {
	LockAdmission(ctx context.Context, tx sqlc.DBTX) error
	Create(ctx context.Context, tx sqlc.DBTX, b *boost.Boost) (*boost.Boost, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (int64, error)
}
