package components

import (
	"discover-api/internal/infra/readstore"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/infra/uow"
	"discover-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction inside the unit of work,
// so only the read stores and the UoW itself are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Post
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PostReadQueries)),
		),
		fx.Annotate(
			readstore.NewPostReadStore,
			fx.As(new(queries.PostReadStore)),
		),
		// Media
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MediaReadQueries)),
		),
		fx.Annotate(
			readstore.NewMediaReadStore,
			fx.As(new(queries.MediaReadStore)),
		),
		// Merchant
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MerchantReadQueries)),
		),
		fx.Annotate(
			readstore.NewMerchantReadStore,
			fx.As(new(queries.MerchantReadStore)),
		),
		// Item
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ItemReadQueries)),
		),
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
		// Boost
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BoostReadQueries)),
		),
		fx.Annotate(
			readstore.NewBoostReadStore,
			fx.As(new(queries.BoostReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		NewReadStores,
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewReadStores(
	posts queries.PostReadStore,
	media queries.MediaReadStore,
	merchants queries.MerchantReadStore,
	items queries.ItemReadStore,
	boosts queries.BoostReadStore,
	users queries.UserReadStore,
) queries.ReadStores {
	return queries.ReadStores{
		Posts:     posts,
		Media:     media,
		Merchants: merchants,
		Items:     items,
		Boosts:    boosts,
		Users:     users,
	}
}
