// Package goquery provides HTML card list extraction using goquery.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cardlist"
)

// DefaultImageHost is prepended to image sources that start with "..".
const DefaultImageHost = "https://en.onepiece-cardgame.com"

// Selectors of the card list markup.
const (
	cardBlockSelector = "dl.modalCol"
	nameSelector      = ".cardName"
	infoColSelector   = ".infoCol"
	costSelector      = ".cost"
	attributeSelector = ".attribute i"
	imageSelector     = "img.lazy"
	effectSelector    = ".text"
	triggerSelector   = ".trigger"
	counterSelector   = ".counter"
	colorSelector     = ".color"
	featureSelector   = ".feature"
	powerSelector     = ".power"
)

var powerInText = regexp.MustCompile(`(?i)(\d+)\s*power`)

// Ensure CardExtractor implements cardlist.CardExtractor at compile time.
var _ cardlist.CardExtractor = (*CardExtractor)(nil)

// CardExtractor reads card records from the official card list markup,
// where every card is a dl.modalCol block.
type CardExtractor struct {
	imageHost string
}

// Option configures a CardExtractor.
type Option func(*CardExtractor)

// WithImageHost sets the host used to absolutize relative image sources.
func WithImageHost(host string) Option {
	return func(e *CardExtractor) {
		e.imageHost = strings.TrimRight(host, "/")
	}
}

// NewCardExtractor creates a new CardExtractor.
func NewCardExtractor(opts ...Option) *CardExtractor {
	e := &CardExtractor{imageHost: DefaultImageHost}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses html and returns one card per card block in document order.
// Missing elements leave the corresponding field empty.
func (e *CardExtractor) Extract(html string) ([]*cardlist.Card, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cardlist.Errorf(cardlist.EINVALID, "failed to parse HTML: %v", err)
	}

	cards := []*cardlist.Card{}
	doc.Find(cardBlockSelector).Each(func(_ int, block *goquery.Selection) {
		cards = append(cards, e.extractCard(block))
	})
	return cards, nil
}

func (e *CardExtractor) extractCard(block *goquery.Selection) *cardlist.Card {
	id := strings.TrimSpace(block.AttrOr("id", ""))
	cardType := cardTypeOf(block)

	c := &cardlist.Card{
		ID:          id,
		Name:        firstText(block, nameSelector),
		CardType:    cardType,
		Power:       powerOf(block),
		Attribute:   firstText(block, attributeSelector),
		Types:       typesOf(block),
		Counter:     selectionDirectText(block.Find(counterSelector).First()),
		Color:       selectionDirectText(block.Find(colorSelector).First()),
		ImageURL:    e.imageURLOf(block),
		EffectText:  effectOf(block),
		TriggerText: triggerOf(block),
		Rarity:      rarityOf(block, id),
		Set:         cardlist.SetName(id),
	}
	if id != "" {
		c.LocalImage = id + ".jpg"
	}

	if cardType == string(cardlist.CardTypeLeader) {
		c.Life = lifeOf(block)
	} else {
		c.Cost = selectionDirectText(block.Find(costSelector).First())
	}
	return c
}

// infoSpan returns the trimmed text of the i-th span in the info column.
func infoSpan(block *goquery.Selection, i int) string {
	spans := block.Find(infoColSelector).First().Find("span")
	if spans.Length() <= i {
		return ""
	}
	return strings.TrimSpace(spans.Eq(i).Text())
}

func cardTypeOf(block *goquery.Selection) string {
	return strings.ToUpper(infoSpan(block, 2))
}

// lifeOf reads life from the cost container of a leader, whose heading
// reads "Life" instead of "Cost".
func lifeOf(block *goquery.Selection) string {
	cost := block.Find(costSelector).First()
	if strings.TrimSpace(cost.Find("h3").First().Text()) != "Life" {
		return ""
	}
	return selectionDirectText(cost)
}

func typesOf(block *goquery.Selection) string {
	text := selectionDirectText(block.Find(featureSelector).First())
	var types []string
	for _, t := range strings.Split(text, "/") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return strings.Join(types, ", ")
}

// powerOf prefers the dedicated power element and falls back to the first
// number followed by "power" in the effect text.
func powerOf(block *goquery.Selection) string {
	if power := block.Find(powerSelector).First(); power.Length() > 0 {
		return selectionDirectText(power)
	}
	if effect := block.Find(effectSelector).First(); effect.Length() > 0 {
		if m := powerInText.FindStringSubmatch(effect.Text()); m != nil {
			return m[1]
		}
	}
	return ""
}

func (e *CardExtractor) imageURLOf(block *goquery.Selection) string {
	src, ok := block.Find(imageSelector).First().Attr("data-src")
	if !ok {
		return ""
	}
	if strings.HasPrefix(src, "..") {
		return e.imageHost + src[2:]
	}
	return src
}

func effectOf(block *goquery.Selection) string {
	effect := block.Find(effectSelector).First()
	if effect.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(strings.ReplaceAll(effect.Text(), "Effect", ""))
}

// triggerOf strips the "Trigger" label and one leading [category] tag.
func triggerOf(block *goquery.Selection) string {
	trigger := block.Find(triggerSelector).First()
	if trigger.Length() == 0 {
		return ""
	}
	text := strings.TrimSpace(strings.ReplaceAll(trigger.Text(), "Trigger", ""))
	if strings.HasPrefix(text, "[") {
		if end := strings.Index(text, "]"); end != -1 {
			text = strings.TrimSpace(text[end+1:])
		}
	}
	return text
}

// rarityOf prefers the rarity span of the info column and falls back to
// guessing from the card ID.
func rarityOf(block *goquery.Selection, id string) string {
	if rarity := infoSpan(block, 1); rarity != "" {
		return rarity
	}
	return cardlist.RarityFromID(id)
}
