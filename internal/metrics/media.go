package metrics

import (
	"context"

	"github.com/sirajbinsyed/silverstar-server-local/internal/core"
	"github.com/sirajbinsyed/silverstar-server-local/internal/storage"
)

// InstrumentedMediaStore counts every call made to the wrapped store.
type InstrumentedMediaStore struct {
	next    core.MediaStore
	metrics *Metrics
}

func InstrumentMediaStore(next core.MediaStore, m *Metrics) *InstrumentedMediaStore {
	return &InstrumentedMediaStore{next: next, metrics: m}
}

func (s *InstrumentedMediaStore) Upload(ctx context.Context, data []byte, folder string, t storage.Transform) (*storage.Asset, error) {
	asset, err := s.next.Upload(ctx, data, folder, t)
	s.metrics.ObserveMedia("upload", err)
	return asset, err
}

func (s *InstrumentedMediaStore) Delete(ctx context.Context, publicID string) error {
	err := s.next.Delete(ctx, publicID)
	s.metrics.ObserveMedia("delete", err)
	return err
}

func (s *InstrumentedMediaStore) DeleteMany(ctx context.Context, publicIDs []string) error {
	err := s.next.DeleteMany(ctx, publicIDs)
	s.metrics.ObserveMedia("delete_many", err)
	return err
}
