package components

import (
	"discover-api/internal/pkg/clock"
	"discover-api/internal/pkg/config"
	"discover-api/internal/usecase/commands"
	"discover-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.StorageConfig { return cfg.Storage },
	func(cfg config.Config) config.BoostConfig { return cfg.Boost },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewMediaUseCase,
		commands.NewMerchantUseCase,
		commands.NewPostUseCase,
		commands.NewItemUseCase,
		commands.NewBoostUseCase,
		commands.NewUserUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFeedQueries,
		queries.NewMenuQueries,
		queries.NewMerchantQueries,
		queries.NewMediaQueries,
		queries.NewUserQueries,
	),
)
