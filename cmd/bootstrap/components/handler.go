package components

import (
	"discover-api/internal/handler"
	"discover-api/internal/handler/api"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(pool *pgxpool.Pool) api.Pinger { return pool },
		api.NewHealthHandler,
		api.NewMerchantHandler,
		api.NewMediaHandler,
		api.NewPostHandler,
		api.NewItemHandler,
		api.NewFeedHandler,
		api.NewUserHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	health *api.HealthHandler,
	merchants *api.MerchantHandler,
	media *api.MediaHandler,
	posts *api.PostHandler,
	items *api.ItemHandler,
	feed *api.FeedHandler,
	users *api.UserHandler,
) handler.Handlers {
	return handler.Handlers{
		Health:    health,
		Merchants: merchants,
		Media:     media,
		Posts:     posts,
		Items:     items,
		Feed:      feed,
		Users:     users,
	}
}
