// Package slog provides logging decorators for cardlist services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/cardlist"
)

// Ensure LoggingExtractor implements cardlist.CardExtractor.
var _ cardlist.CardExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a CardExtractor with debug logging.
type LoggingExtractor struct {
	next   cardlist.CardExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next cardlist.CardExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (cards []*cardlist.Card, err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Error("extract",
				"bytes", len(html),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		e.logger.Debug("extract",
			"bytes", len(html),
			"cards", len(cards),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(html)
}
