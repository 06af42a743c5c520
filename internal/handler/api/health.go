package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type StorageHealth interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	storage StorageHealth
}

func NewHealthHandler(db Pinger, storage StorageHealth) *HealthHandler {
	return &HealthHandler{db: db, storage: storage}
}

// @Summary Health check
// @Description Reports database and blob store reachability
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	body := gin.H{"status": "ok", "database": "ok", "storage": "ok"}
	status := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		body["database"] = err.Error()
		body["status"] = "degraded"
		status = http.StatusServiceUnavailable
	}
	if err := h.storage.Health(ctx); err != nil {
		body["storage"] = err.Error()
		body["status"] = "degraded"
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, body)
}
