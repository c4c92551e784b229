package cardlist

import (
	"regexp"
	"strings"
)

// PromoSetName is the set name of every "P-" prefixed card.
const PromoSetName = "Promotional Cards"

// setNames maps set codes to display names.
var setNames = map[string]string{
	"OP01":  "OP01 - Romance Dawn",
	"OP02":  "OP02 - Paramount War",
	"OP03":  "OP03 - Pillars of Strength",
	"OP04":  "OP04 - Kingdoms of Intrigue",
	"OP05":  "OP05 - Awakening of the New Era",
	"OP06":  "OP06 - Wings of the Captain",
	"OP07":  "OP07 - 500 Years in the Future",
	"OP08":  "OP08 - Two Legends",
	"OP09":  "OP09 - Emperors in the New World",
	"OP10":  "OP10 - Royal Blood",
	"OP11":  "OP11 - A Fist of Divine Speed",
	"EB01":  "EB01 - Memorial Collection",
	"EB02":  "EB02 - Anime 25th Collection",
	"PRB01": "PRB01 - One Piece The Best",
	"ST01":  "ST01 - Straw Hat Crew",
	"ST02":  "ST02 - Worst Generation",
	"ST03":  "ST03 - The Seven Warlords of the Sea",
	"ST04":  "ST04 - Animal Kingdom Pirates",
	"ST05":  "ST05 - One Piece Film Edition",
	"ST06":  "ST06 - Absolute Justice",
	"ST07":  "ST07 - Big Mom Pirates",
	"ST08":  "ST08 - Monkey D. Luffy",
	"ST09":  "ST09 - Yamato",
	"ST10":  "ST10 - The Three Captains",
	"ST11":  "ST11 - Uta",
	"ST12":  "ST12 - Zoro & Sanji",
	"ST13":  "ST13 - The Three Brothers",
	"ST14":  "ST14 - 3D2Y",
	"ST15":  "ST15 - Edward.Newgate",
	"ST16":  "ST16 - Uta",
	"ST17":  "ST17 - Donquixote Doflamingo",
	"ST18":  "ST18 - Monkey.D.Luffy",
	"ST19":  "ST19 - Smoker",
	"ST20":  "ST20 - Charlotte Katakuri",
	"ST21":  "ST21 - EX - Gear 5",
	"ST22":  "ST22 - Ace & Newgate",
	"ST23":  "ST23 - Shanks",
	"ST24":  "ST24 - Jewelry Bonney",
	"ST25":  "ST25 - Buggy",
	"ST26":  "ST26 - Monkey.D.Luffy",
	"ST27":  "ST27 - Marshall.D.Teach",
	"ST28":  "ST28 - Yamato",
}

var setCodePattern = regexp.MustCompile(`^([A-Z]{2,3}\d{2})`)

// SetName resolves the display name of the set a card ID belongs to.
// Unknown prefixes yield "".
func SetName(id string) string {
	if strings.HasPrefix(id, "P-") {
		return PromoSetName
	}
	m := setCodePattern.FindStringSubmatch(id)
	if m == nil {
		return ""
	}
	return setNames[m[1]]
}
