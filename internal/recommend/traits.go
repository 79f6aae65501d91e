package recommend

import (
	"strings"

	"storefront-backend/internal/catalog"
)

// Traits is the flat attribute record both products and visual-search
// features reduce to before scoring.
type Traits struct {
	Style     string
	Color     string
	Pattern   string
	Material  string
	Category  string
	Formality int // 1-10
	Keywords  []string
}

// TraitsFromProduct reduces a catalog product to its scorable attributes.
func TraitsFromProduct(p catalog.Product) Traits {
	t := Traits{
		Color:     strings.ToLower(p.Color),
		Material:  strings.ToLower(p.Material),
		Category:  strings.ToLower(p.Category),
		Formality: EstimateFormality(p.Name, p.Category),
		Keywords:  lowerAll(p.Tags),
	}
	t.Style = styleFromTags(p.Tags, p.Occasions)
	t.Pattern = patternFromTags(p.Tags)
	return t
}

func styleFromTags(tags, occasions []string) string {
	for _, o := range occasions {
		switch strings.ToLower(o) {
		case "formal", "wedding":
			return "formal"
		case "business":
			return "business"
		case "casual":
			return "casual"
		}
	}
	if len(tags) > 0 {
		return strings.ToLower(tags[0])
	}
	return "classic"
}

func patternFromTags(tags []string) string {
	known := []string{"striped", "checked", "plaid", "herringbone", "houndstooth", "paisley", "solid", "grenadine"}
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, p := range known {
			if strings.Contains(lower, p) {
				return p
			}
		}
	}
	return "solid"
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(s))
	}
	return out
}
