package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/paperdex"
)

// Ensure LoggingCatalogStore implements paperdex.CatalogStore.
var _ paperdex.CatalogStore = (*LoggingCatalogStore)(nil)

// LoggingCatalogStore wraps a CatalogStore with debug logging.
type LoggingCatalogStore struct {
	next   paperdex.CatalogStore
	logger *slog.Logger
}

// NewLoggingCatalogStore creates a new LoggingCatalogStore.
func NewLoggingCatalogStore(next paperdex.CatalogStore, logger *slog.Logger) *LoggingCatalogStore {
	return &LoggingCatalogStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the operation.
func (s *LoggingCatalogStore) Load(ctx context.Context) (catalog *paperdex.Catalog, err error) {
	defer func(begin time.Time) {
		entries := 0
		if catalog != nil {
			entries = len(catalog.Papers)
		}
		s.logger.Info("catalog load",
			"entries", entries,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingCatalogStore) Save(ctx context.Context, catalog *paperdex.Catalog) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("catalog save",
			"entries", len(catalog.Papers),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, catalog)
}
