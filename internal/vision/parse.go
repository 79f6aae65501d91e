package vision

import (
	"encoding/json"
	"strings"
)

var (
	knownColors   = []string{"navy", "black", "white", "grey", "gray", "charcoal", "brown", "burgundy", "blue", "indigo", "olive", "tan", "cream", "red", "green"}
	knownPatterns = []string{"solid", "striped", "checked", "plaid", "herringbone", "houndstooth", "paisley", "grenadine", "textured"}
	knownGarments = []string{"suit", "blazer", "jacket", "shirt", "trousers", "chinos", "tie", "sweater", "polo", "coat", "vest", "shoes", "loafers", "oxfords"}
	knownStyles   = []string{"formal", "business", "casual", "smart casual", "classic", "modern"}
)

// ParseAnalysis decodes a provider response. Valid JSON is unmarshaled
// directly; anything else goes through the keyword-scan fallback so a
// chatty free-text answer still yields a usable analysis.
func ParseAnalysis(raw string) Analysis {
	trimmed := strings.TrimSpace(raw)
	if json.Valid([]byte(trimmed)) {
		var a Analysis
		if err := json.Unmarshal([]byte(trimmed), &a); err == nil && !empty(a) {
			return withDefaults(a)
		}
	}
	return ParseLoose(trimmed)
}

// ParseLoose greps free text for known menswear vocabulary and builds the
// structured analysis shape from whatever it finds.
func ParseLoose(text string) Analysis {
	lower := strings.ToLower(text)
	a := Analysis{
		Colors:   scan(lower, knownColors),
		Patterns: scan(lower, knownPatterns),
		Garments: scan(lower, knownGarments),
	}
	for _, s := range knownStyles {
		if strings.Contains(lower, s) {
			a.Style = firstWord(s)
			break
		}
	}
	switch {
	case strings.Contains(lower, "black tie"), strings.Contains(lower, "tuxedo"):
		a.Formality = 10
		a.Occasion = "formal"
	case strings.Contains(lower, "formal"), strings.Contains(lower, "suit"):
		a.Formality = 8
		a.Occasion = "business"
	case strings.Contains(lower, "casual"):
		a.Formality = 4
		a.Occasion = "casual"
	}
	return withDefaults(a)
}

func withDefaults(a Analysis) Analysis {
	if a.Style == "" {
		a.Style = "classic"
	}
	if len(a.Colors) == 0 {
		a.Colors = []string{"navy"}
	}
	if len(a.Patterns) == 0 {
		a.Patterns = []string{"solid"}
	}
	if a.Formality <= 0 {
		a.Formality = 6
	}
	if a.Occasion == "" {
		a.Occasion = "business"
	}
	if a.MarketTier == "" {
		a.MarketTier = "mid-range"
	}
	return a
}

func scan(lower string, vocab []string) []string {
	var out []string
	for _, word := range vocab {
		if strings.Contains(lower, word) {
			out = append(out, word)
		}
	}
	return out
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i > 0 {
		return s[:i]
	}
	return s
}

func empty(a Analysis) bool {
	return a.Style == "" && len(a.Colors) == 0 && len(a.Garments) == 0
}
