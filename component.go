package cardlist

import (
	"encoding/json"
	"strings"
)

// NamedValue is a component entry of the import target. Name and Value are
// always equal; the target schema requires both.
type NamedValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Image is one artwork variant of a logical card.
type Image struct {
	Label     string `json:"label"`
	ImageURL  string `json:"image_url"`
	Artist    string `json:"artist"`
	IsDefault bool   `json:"is_default"`
}

// TextNode is a leaf of a rich-text block.
type TextNode struct {
	Text string `json:"text"`
}

// Block is a rich-text block in the import target's blocks format.
type Block struct {
	Type     string     `json:"type"`
	Children []TextNode `json:"children"`
}

// ComponentCard is a logical card in the nested shape expected by the
// import target. List-valued fields are never nil.
type ComponentCard struct {
	ID                 string
	Name               string
	CardType           CardType
	Life               string
	Cost               string
	Power              string
	Attributes         []NamedValue
	Traits             []NamedValue
	Counter            string
	Colors             []NamedValue
	Images             []Image
	EffectDescription  []Block
	TriggerDescription string
	HasTrigger         bool
	TriggerEffect      []Block
	Rarity             string
	Set                string
}

// ComponentColumns lists the header of the component CSV format in output order.
var ComponentColumns = []string{
	"cardId", "name", "cardType", "life", "cost", "power", "attributes", "traits",
	"counter", "colors", "images", "effect_description", "trigger_description",
	"has_trigger", "trigger_effect", "rarity", "set",
}

// Componentize converts a flat card and its merged image list into the
// nested shape. The resulting ID is the base ID of c.
func Componentize(c *Card, images []Image) *ComponentCard {
	if images == nil {
		images = []Image{}
	}

	rarity := NormalizeRarity(c.Rarity)
	if rarity == "" {
		rarity = RarityFromID(c.ID)
	}
	set := c.Set
	if set == "" {
		set = SetName(c.ID)
	}

	return &ComponentCard{
		ID:                 BaseID(c.ID),
		Name:               c.Name,
		CardType:           NormalizeCardType(c.CardType),
		Life:               c.Life,
		Cost:               c.Cost,
		Power:              c.Power,
		Attributes:         SplitNamedValues(c.Attribute, "/"),
		Traits:             SplitNamedValues(c.Types, ","),
		Counter:            c.Counter,
		Colors:             SplitNamedValues(c.Color, "/"),
		Images:             images,
		EffectDescription:  RichText(c.EffectText),
		TriggerDescription: c.TriggerText,
		HasTrigger:         strings.TrimSpace(c.TriggerText) != "",
		TriggerEffect:      RichText(c.TriggerText),
		Rarity:             rarity,
		Set:                set,
	}
}

// SplitNamedValues splits s on sep, trims every token and drops empty ones.
func SplitNamedValues(s, sep string) []NamedValue {
	values := []NamedValue{}
	for _, tok := range strings.Split(s, sep) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		values = append(values, NamedValue{Name: tok, Value: tok})
	}
	return values
}

// RichText wraps text in a single paragraph block. Blank text yields an
// empty block list.
func RichText(text string) []Block {
	if strings.TrimSpace(text) == "" {
		return []Block{}
	}
	return []Block{{
		Type:     "paragraph",
		Children: []TextNode{{Text: text}},
	}}
}

// imagePayload is the subset of image objects recognized in a payload.
type imagePayload struct {
	URL      string `json:"url"`
	ImageURL string `json:"image_url"`
}

// ParseImagePayload returns the image URLs held in raw. Raw may be a JSON
// object, a JSON array of objects or strings, or a plain URL. Anything that does not
// decode is treated as a single URL. Blank input yields nil.
func ParseImagePayload(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	switch trimmed[0] {
	case '[':
		var list []imagePayload
		if err := json.Unmarshal([]byte(trimmed), &list); err == nil {
			urls := make([]string, 0, len(list))
			for _, img := range list {
				urls = append(urls, img.url())
			}
			return urls
		}
		var plain []string
		if err := json.Unmarshal([]byte(trimmed), &plain); err == nil {
			return plain
		}
	case '{':
		var img imagePayload
		if err := json.Unmarshal([]byte(trimmed), &img); err == nil {
			return []string{img.url()}
		}
	}
	return []string{raw}
}

func (p imagePayload) url() string {
	if p.URL != "" {
		return p.URL
	}
	return p.ImageURL
}
