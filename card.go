package cardlist

import (
	"context"
	"regexp"
	"strings"
)

// CardType is the printed category of a card.
type CardType string

// CardType constants accepted by the import target.
const (
	CardTypeLeader    CardType = "LEADER"
	CardTypeCharacter CardType = "CHARACTER"
	CardTypeEvent     CardType = "EVENT"
	CardTypeStage     CardType = "STAGE"
)

// NormalizeCardType upper-cases s and returns it when it is a known card
// type. Anything else, including the empty string, yields "".
func NormalizeCardType(s string) CardType {
	switch t := CardType(strings.ToUpper(strings.TrimSpace(s))); t {
	case CardTypeLeader, CardTypeCharacter, CardTypeEvent, CardTypeStage:
		return t
	default:
		return ""
	}
}

// Card is a flat record describing one physical print of a card.
// Alternate-art prints carry a "_p<N>" suffix on their ID.
type Card struct {
	ID          string
	Name        string
	CardType    string
	Life        string
	Cost        string
	Power       string
	Attribute   string // slash-joined
	Types       string // comma-joined
	Counter     string
	Color       string // slash-joined
	ImageURL    string
	LocalImage  string
	EffectText  string
	TriggerText string
	Rarity      string
	Set         string
}

// Validate returns an error if the card contains invalid fields.
func (c *Card) Validate() error {
	if c.ID == "" {
		return Errorf(EINVALID, "card ID required")
	}
	return nil
}

// FlatColumns lists the header of the flat CSV format in output order.
var FlatColumns = []string{
	"cardId", "name", "cardType", "life", "cost", "power", "attribute", "types",
	"counter", "color", "imageUrl", "localImage", "effectText", "triggerText",
	"rarity", "set",
}

// Fields returns the card's values in FlatColumns order.
func (c *Card) Fields() []string {
	return []string{
		c.ID, c.Name, c.CardType, c.Life, c.Cost, c.Power, c.Attribute, c.Types,
		c.Counter, c.Color, c.ImageURL, c.LocalImage, c.EffectText, c.TriggerText,
		c.Rarity, c.Set,
	}
}

var variantSuffix = regexp.MustCompile(`_p(\d+)$`)

// BaseID returns id with any trailing "_p<N>" alternate-art suffix removed.
func BaseID(id string) string {
	return variantSuffix.ReplaceAllString(id, "")
}

// VariantLabel returns "p<N>" for an alternate-art ID and "default" otherwise.
func VariantLabel(id string) string {
	if m := variantSuffix.FindStringSubmatch(id); m != nil {
		return "p" + m[1]
	}
	return "default"
}

// IsDefaultVariant reports whether id carries no alternate-art suffix.
func IsDefaultVariant(id string) bool {
	return !variantSuffix.MatchString(id)
}

// CardExtractor turns one HTML card list document into flat card records,
// one per card block in document order.
type CardExtractor interface {
	Extract(html string) ([]*Card, error)
}

// CardFilter represents a filter for FindCards.
type CardFilter struct {
	Set      *string
	CardType *string
	BaseID   *string

	Offset int
	Limit  int
}

// UpsertResult summarizes an UpsertCards call.
type UpsertResult struct {
	ImportID  string
	Inserted  int
	Updated   int
	Unchanged int
}

// CardService represents a service for indexing flat card records.
type CardService interface {
	// UpsertCards stores cards keyed by ID. Later cards replace earlier ones
	// with the same ID. Source names the input the cards came from.
	UpsertCards(ctx context.Context, source string, cards []*Card) (*UpsertResult, error)

	// FindCards retrieves cards matching the filter ordered by ID.
	FindCards(ctx context.Context, filter CardFilter) ([]*Card, error)
}
