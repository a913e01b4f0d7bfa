package services

import (
	"regexp"
	"strings"
)

var ValidCategories = []string{"Heritage", "Nature", "Adventure", "Religious"}

// CategorySynonyms maps each canonical category to the keywords that
// legacy/variant stored values may use. Keys are the normalized categories.
var CategorySynonyms = map[string][]string{
	"Heritage":  {"heritage", "fort", "palace", "historic"},
	"Nature":    {"nature", "water", "lake", "river", "hill", "mountain", "park", "forest", "waterfall"},
	"Adventure": {"adventure", "trek", "rafting", "camp", "climb"},
	"Religious": {"relig", "temple", "mosque", "church", "gurudwara", "shrine"},
}

// NormalizeCategory maps free-text category input to one of the four valid
// categories. Keyword groups are checked in a fixed order and the first match
// wins; anything unmatched falls back to Heritage so the enum never breaks.
func NormalizeCategory(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return "Heritage"
	}

	for _, category := range ValidCategories {
		for _, keyword := range CategorySynonyms[category] {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}

	for _, category := range ValidCategories {
		if strings.ToLower(category) == lower {
			return category
		}
	}

	return "Heritage"
}

// CategoryFilterPattern normalizes the input and returns an anchored
// case-insensitive pattern matching any synonym of that category, so that
// category filters also match variant values stored before normalization.
func CategoryFilterPattern(raw string) string {
	norm := NormalizeCategory(raw)
	keywords := CategorySynonyms[norm]

	escaped := make([]string, len(keywords))
	for i, keyword := range keywords {
		escaped[i] = regexp.QuoteMeta(keyword)
	}

	return "^(" + strings.Join(escaped, "|") + ")$"
}
