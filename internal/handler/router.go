package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "discover-api/docs"
	"discover-api/internal/handler/api"
	"discover-api/internal/handler/httperr"
	"discover-api/internal/handler/middleware"
	"discover-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Health    *api.HealthHandler
	Merchants *api.MerchantHandler
	Media     *api.MediaHandler
	Posts     *api.PostHandler
	Items     *api.ItemHandler
	Feed      *api.FeedHandler
	Users     *api.UserHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	httperr.UseJSONFieldNames()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", h.Health.Check)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		merchants := apiGroup.Group("/merchants")
		addRoutes(merchants, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Merchants.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Merchants.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Merchants.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Merchants.Delete},
			{Method: http.MethodGet, Path: "/:id/posts", Handler: h.Merchants.Posts},
			{Method: http.MethodPost, Path: "/:id/posts", Handler: h.Merchants.CreatePost},
			{Method: http.MethodGet, Path: "/:id/menu", Handler: h.Merchants.Menu},
			{Method: http.MethodPost, Path: "/:id/items", Handler: h.Merchants.CreateItem},
		})

		media := apiGroup.Group("/media")
		addRoutes(media, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Media.Upload},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Media.Get},
		})

		posts := apiGroup.Group("/posts")
		addRoutes(posts, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Posts.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Posts.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Posts.Delete},
			{Method: http.MethodPost, Path: "/:id/boost", Handler: h.Posts.Boost},
			{Method: http.MethodPost, Path: "/:id/like", Handler: h.Posts.Like},
			{Method: http.MethodPost, Path: "/:id/comments", Handler: h.Posts.Comment},
		})

		items := apiGroup.Group("/items")
		addRoutes(items, []route{
			{Method: http.MethodPut, Path: "/:id", Handler: h.Items.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Items.Delete},
		})

		users := apiGroup.Group("/users")
		addRoutes(users, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Users.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Users.Get},
		})

		apiGroup.GET("/discover", h.Feed.Discover)
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		g.Handle(r.Method, r.Path, h)
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
