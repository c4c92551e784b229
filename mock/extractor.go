package mock

import "github.com/fwojciec/cardlist"

var _ cardlist.CardExtractor = (*CardExtractor)(nil)

// CardExtractor is a mock implementation of cardlist.CardExtractor.
type CardExtractor struct {
	ExtractFn func(html string) ([]*cardlist.Card, error)
}

func (e *CardExtractor) Extract(html string) ([]*cardlist.Card, error) {
	return e.ExtractFn(html)
}
