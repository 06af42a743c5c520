package middleware

import (
	"log/slog"

	"discover-api/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// Browsers may send and read the request id whatever the configuration says.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     lo.Union(cfg.AllowHeaders, []string{RequestIDHeader}),
		ExposeHeaders:    lo.Union(cfg.ExposeHeaders, []string{RequestIDHeader, "Location"}),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}
