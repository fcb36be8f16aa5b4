package mock

import (
	"context"

	"github.com/fwojciec/paperdex"
)

var _ paperdex.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is a mock implementation of paperdex.CatalogStore.
type CatalogStore struct {
	LoadFn func(ctx context.Context) (*paperdex.Catalog, error)
	SaveFn func(ctx context.Context, catalog *paperdex.Catalog) error
}

func (s *CatalogStore) Load(ctx context.Context) (*paperdex.Catalog, error) {
	return s.LoadFn(ctx)
}

func (s *CatalogStore) Save(ctx context.Context, catalog *paperdex.Catalog) error {
	return s.SaveFn(ctx, catalog)
}
