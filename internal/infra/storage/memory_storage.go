package storage

import (
	"context"
	"slices"
	"sync"

	"discover-api/internal/pkg/config"
)

type MemoryObject struct {
	Data        []byte
	ContentType string
}

// MemoryStorage keeps objects in process. It backs local runs without an
// S3 bucket and the end-to-end tests.
type MemoryStorage struct {
	*PublicURLResolver

	mu      sync.RWMutex
	objects map[string]MemoryObject
}

func NewMemoryStorage(cfg config.StorageConfig) *MemoryStorage {
	return &MemoryStorage{
		PublicURLResolver: NewPublicURLResolver(cfg.Bucket, cfg.Region),
		objects:           make(map[string]MemoryObject),
	}
}

func (m *MemoryStorage) Put(_ context.Context, key string, data []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = MemoryObject{Data: slices.Clone(data), ContentType: contentType}
	return nil
}

func (m *MemoryStorage) Health(context.Context) error {
	return nil
}

func (m *MemoryStorage) Object(key string) (MemoryObject, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	return obj, ok
}
