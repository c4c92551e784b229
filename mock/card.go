package mock

import (
	"context"

	"github.com/fwojciec/cardlist"
)

var _ cardlist.CardService = (*CardService)(nil)

// CardService is a mock implementation of cardlist.CardService.
type CardService struct {
	UpsertCardsFn func(ctx context.Context, source string, cards []*cardlist.Card) (*cardlist.UpsertResult, error)
	FindCardsFn   func(ctx context.Context, filter cardlist.CardFilter) ([]*cardlist.Card, error)
}

func (s *CardService) UpsertCards(ctx context.Context, source string, cards []*cardlist.Card) (*cardlist.UpsertResult, error) {
	return s.UpsertCardsFn(ctx, source, cards)
}

func (s *CardService) FindCards(ctx context.Context, filter cardlist.CardFilter) ([]*cardlist.Card, error) {
	return s.FindCardsFn(ctx, filter)
}
