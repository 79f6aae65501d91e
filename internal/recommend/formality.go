package recommend

import "strings"

const defaultFormality = 6

// EstimateFormality derives a garment's formality on a 1-10 scale from
// keyword matches over its name and category.
func EstimateFormality(name, category string) int {
	haystack := strings.ToLower(name + " " + category)
	switch {
	case strings.Contains(haystack, "tuxedo"), strings.Contains(haystack, "black-tie"), strings.Contains(haystack, "black tie"):
		return 10
	case strings.Contains(haystack, "suit"), strings.Contains(haystack, "formal"):
		return 8
	case strings.Contains(haystack, "blazer"), strings.Contains(haystack, "business"):
		return 6
	case strings.Contains(haystack, "casual"), strings.Contains(haystack, "denim"), strings.Contains(haystack, "tee"):
		return 3
	default:
		return defaultFormality
	}
}

// FormalityScore maps a formality gap onto [0,1].
func FormalityScore(a, b int) float64 {
	delta := a - b
	if delta < 0 {
		delta = -delta
	}
	score := 1 - float64(delta)/10
	if score < 0 {
		return 0
	}
	return score
}
