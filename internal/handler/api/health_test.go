//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"discover-api/internal/handler/api"
	"discover-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error   { return f(ctx) }
func (f pingFunc) Health(ctx context.Context) error { return f(ctx) }

func healthy(context.Context) error { return nil }

func TestHealthHandler_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		db         pingFunc
		storage    pingFunc
		wantStatus int
		wantBody   map[string]string
	}{
		{
			name:       "all up",
			db:         healthy,
			storage:    healthy,
			wantStatus: http.StatusOK,
			wantBody:   map[string]string{"status": "ok", "database": "ok", "storage": "ok"},
		},
		{
			name:       "database down",
			db:         func(context.Context) error { return errors.New("dial tcp: refused") },
			storage:    healthy,
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   map[string]string{"status": "degraded", "database": "dial tcp: refused", "storage": "ok"},
		},
		{
			name:       "storage down",
			db:         healthy,
			storage:    func(context.Context) error { return errors.New("NoSuchBucket") },
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   map[string]string{"status": "degraded", "database": "ok", "storage": "NoSuchBucket"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", api.NewHealthHandler(tt.db, tt.storage).Check)

			rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]string
			assert.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
