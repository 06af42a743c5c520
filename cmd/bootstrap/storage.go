package bootstrap

import (
	"context"
	"log/slog"

	"discover-api/internal/domain/media"
	"discover-api/internal/handler/api"
	"discover-api/internal/infra/storage"
	"discover-api/internal/pkg/config"
	"discover-api/internal/usecase/shared"

	"go.uber.org/fx"
)

// BlobBackend is what either storage implementation offers to the rest of the app.
type BlobBackend interface {
	shared.BlobStore
	api.StorageHealth
}

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewBlobBackend,
		func(b BlobBackend) shared.BlobStore { return b },
		func(b BlobBackend) api.StorageHealth { return b },
		func(b BlobBackend) media.URLResolver { return b },
	),
)

func NewBlobBackend(cfg config.Config) (BlobBackend, error) {
	if cfg.Storage.Backend == config.StorageBackendMemory {
		slog.Warn("using in-memory blob storage; uploads are lost on restart")
		return storage.NewMemoryStorage(cfg.Storage), nil
	}
	s, err := storage.NewS3Storage(context.Background(), cfg.Storage)
	if err != nil {
		return nil, err
	}
	slog.Info("S3 blob storage configured", "bucket", cfg.Storage.Bucket, "region", cfg.Storage.Region)
	return s, nil
}
