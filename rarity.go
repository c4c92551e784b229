package cardlist

import "strings"

// Rarity short codes.
const (
	RarityCommon      = "C"
	RarityRare        = "R"
	RaritySuperRare   = "SR"
	RaritySecret      = "SEC"
	RarityLeader      = "L"
	RarityPromotional = "P"
	RarityDon         = "DON"
	RaritySpecial     = "SP"
)

// RarityFromID guesses a rarity from substrings of a card ID. The first
// match wins in this order: "_p", "_r", "_sr", "_sec", "_l", "don".
// Anything else is common. An empty ID yields "".
//
// The guess is approximate since "_r" and friends can occur incidentally.
// Prefer rarity read from the page and fall back to this only when absent.
func RarityFromID(id string) string {
	if id == "" {
		return ""
	}
	lower := strings.ToLower(id)
	switch {
	case strings.Contains(lower, "_p"):
		return RarityPromotional
	case strings.Contains(lower, "_r"):
		return RarityRare
	case strings.Contains(lower, "_sr"):
		return RaritySuperRare
	case strings.Contains(lower, "_sec"):
		return RaritySecret
	case strings.Contains(lower, "_l"):
		return RarityLeader
	case strings.Contains(lower, "don"):
		return RarityDon
	}
	return RarityCommon
}

// NormalizeRarity maps the "SP CARD" display text to its short code and
// returns every other value trimmed but otherwise unchanged.
func NormalizeRarity(s string) string {
	s = strings.TrimSpace(s)
	if s == "SP CARD" {
		return RaritySpecial
	}
	return s
}
