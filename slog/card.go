package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cardlist"
)

// Ensure LoggingCardService implements cardlist.CardService.
var _ cardlist.CardService = (*LoggingCardService)(nil)

// LoggingCardService wraps a CardService with logging.
type LoggingCardService struct {
	next   cardlist.CardService
	logger *slog.Logger
}

// NewLoggingCardService creates a new LoggingCardService.
func NewLoggingCardService(next cardlist.CardService, logger *slog.Logger) *LoggingCardService {
	return &LoggingCardService{next: next, logger: logger}
}

// UpsertCards delegates to the wrapped service and logs the operation.
func (s *LoggingCardService) UpsertCards(ctx context.Context, source string, cards []*cardlist.Card) (result *cardlist.UpsertResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"source", source,
			"cards", len(cards),
			"duration", time.Since(begin),
		}
		if result != nil {
			attrs = append(attrs,
				"import", result.ImportID,
				"inserted", result.Inserted,
				"updated", result.Updated,
				"unchanged", result.Unchanged,
			)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		s.logger.Info("upsert cards", attrs...)
	}(time.Now())
	return s.next.UpsertCards(ctx, source, cards)
}

// FindCards delegates to the wrapped service and logs the operation.
func (s *LoggingCardService) FindCards(ctx context.Context, filter cardlist.CardFilter) (cards []*cardlist.Card, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find cards",
			"count", len(cards),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCards(ctx, filter)
}
