package cardlist

import (
	"sort"
	"strings"
)

// Dedupe collapses cards sharing an exact ID. The last card with a given ID
// wins but keeps the position where that ID was first seen.
func Dedupe(cards []*Card) []*Card {
	index := make(map[string]int, len(cards))
	out := make([]*Card, 0, len(cards))
	for _, c := range cards {
		if i, ok := index[c.ID]; ok {
			out[i] = c
			continue
		}
		index[c.ID] = len(out)
		out = append(out, c)
	}
	return out
}

// CardGroup holds every print of one logical card.
type CardGroup struct {
	BaseID   string
	Main     *Card
	Variants []*Card
}

// GroupVariants groups cards by base ID. Groups appear in the order their
// base ID was first seen and variants keep input order. Main is the variant
// without an alternate-art suffix, or the first variant when there is none.
func GroupVariants(cards []*Card) []*CardGroup {
	index := make(map[string]*CardGroup)
	var groups []*CardGroup
	for _, c := range cards {
		base := BaseID(c.ID)
		g, ok := index[base]
		if !ok {
			g = &CardGroup{BaseID: base}
			index[base] = g
			groups = append(groups, g)
		}
		g.Variants = append(g.Variants, c)
		if g.Main == nil && IsDefaultVariant(c.ID) {
			g.Main = c
		}
	}
	for _, g := range groups {
		if g.Main == nil {
			g.Main = g.Variants[0]
		}
	}
	return groups
}

// Images builds the merged image list of the group. Every URL in every
// variant's image payload becomes one entry tagged with the variant label.
// Default entries come first; relative order is otherwise preserved.
func (g *CardGroup) Images() []Image {
	images := []Image{}
	for _, v := range g.Variants {
		label := VariantLabel(v.ID)
		for _, url := range ParseImagePayload(v.ImageURL) {
			images = append(images, Image{
				Label:     label,
				ImageURL:  url,
				IsDefault: label == "default",
			})
		}
	}
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].IsDefault && !images[j].IsDefault
	})
	return images
}

// Merge dedupes cards, groups variants and componentizes one record per
// logical card.
func Merge(cards []*Card) []*ComponentCard {
	groups := GroupVariants(Dedupe(cards))
	out := make([]*ComponentCard, 0, len(groups))
	for _, g := range groups {
		out = append(out, Componentize(g.Main, g.Images()))
	}
	return out
}

// TraitCount is the number of logical cards carrying a trait.
type TraitCount struct {
	Trait string
	Cards int
}

// TraitCounts returns every distinct trait value across cards with the
// number of cards carrying it, sorted by trait.
func TraitCounts(cards []*ComponentCard) []TraitCount {
	counts := make(map[string]int)
	for _, c := range cards {
		seen := make(map[string]bool)
		for _, t := range c.Traits {
			v := strings.TrimSpace(t.Value)
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			counts[v]++
		}
	}
	out := make([]TraitCount, 0, len(counts))
	for trait, n := range counts {
		out = append(out, TraitCount{Trait: trait, Cards: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Trait < out[j].Trait })
	return out
}
