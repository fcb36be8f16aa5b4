package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/paperdex"
)

// Ensure LoggingExtractor implements paperdex.Extractor.
var _ paperdex.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   paperdex.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next paperdex.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string, paperID string) (paper *paperdex.Paper, err error) {
	defer func(begin time.Time) {
		title := ""
		if paper != nil {
			title = paper.Title
		}
		e.logger.Info("metadata extraction",
			"id", paperID,
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, paperID)
}
