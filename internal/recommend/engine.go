package recommend

import (
	"sort"
	"strings"

	"storefront-backend/internal/catalog"
)

const (
	// reasonThreshold is the sub-score above which a canned reason phrase
	// is attached.
	reasonThreshold = 0.8

	// DefaultThreshold filters product-to-product recommendations.
	DefaultThreshold = 0.70
	// VisualThreshold filters visual search matches.
	VisualThreshold = 0.75

	defaultLimit = 8
)

var reasonPhrases = map[Dimension]string{
	DimStyle:     "Strong style match",
	DimColor:     "Perfect color harmony",
	DimPattern:   "Complementary pattern and texture",
	DimFormality: "Matched level of formality",
	DimQuality:   "Comparable make and quality",
	DimCategory:  "Completes the same wardrobe category",
}

// Preferences carries the shopper's stored style preferences.
type Preferences struct {
	PreferredColors  []string
	StylePersonality string
}

// Scored is one ranked recommendation.
type Scored struct {
	Product catalog.Product `json:"product"`
	Score   float64         `json:"score"`
	Reasons []string        `json:"reasons"`
	Type    string          `json:"type"`
}

// Options controls one ranking pass.
type Options struct {
	Profile   Profile
	Scorer    SubScorer
	Threshold float64
	Limit     int
	Prefs     *Preferences
	Type      string
}

// Score computes the weighted similarity between source traits and a
// candidate product, clamped to [0,1], along with reason phrases for
// every dimension scoring above the reason threshold.
func Score(source Traits, candidate catalog.Product, profile Profile, scorer SubScorer) (float64, []string) {
	candidateTraits := TraitsFromProduct(candidate)

	total := 0.0
	var reasons []string
	for _, dim := range orderedDimensions(profile) {
		weight := profile.Weights[dim]
		sub := clamp01(scorer.Score(dim, source, candidateTraits))
		total += weight * sub
		if sub > reasonThreshold {
			reasons = append(reasons, reasonPhrases[dim])
		}
	}
	return clamp01(total), reasons
}

// Rank scores every candidate, drops those below the threshold, applies
// personalization bonuses, and returns the top results ordered by
// adjusted score with product ID as the tie-break.
func Rank(source Traits, candidates []catalog.Product, opts Options) []Scored {
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	scorer := opts.Scorer
	if scorer == nil {
		scorer = AttributeScorer{}
	}
	profile := opts.Profile
	if profile.Weights == nil {
		profile = ProfileBasic
	}

	out := make([]Scored, 0, len(candidates))
	for _, candidate := range candidates {
		base, reasons := Score(source, candidate, profile, scorer)
		if base < threshold {
			continue
		}
		adjusted, bonusReasons := applyBonuses(base, candidate, opts.Prefs)
		out = append(out, Scored{
			Product: candidate,
			Score:   adjusted,
			Reasons: append(reasons, bonusReasons...),
			Type:    opts.Type,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Product.ID < out[j].Product.ID
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func applyBonuses(score float64, candidate catalog.Product, prefs *Preferences) (float64, []string) {
	var reasons []string
	if prefs != nil {
		if matchesPreferredColor(prefs.PreferredColors, candidate.Color) {
			score += 0.10
			reasons = append(reasons, "Matches your preferred colors")
		}
		if prefs.StylePersonality != "" && matchesStylePersonality(prefs.StylePersonality, candidate) {
			score += 0.05
			reasons = append(reasons, "Fits your style personality")
		}
	}
	if candidate.Trending {
		score += 0.05
	}
	if candidate.InStock {
		score += 0.02
	}
	return clamp01(score), reasons
}

func matchesPreferredColor(preferred []string, color string) bool {
	if color == "" {
		return false
	}
	lower := strings.ToLower(color)
	for _, p := range preferred {
		if p != "" && strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

func matchesStylePersonality(personality string, candidate catalog.Product) bool {
	lower := strings.ToLower(personality)
	for _, tag := range candidate.Tags {
		if strings.Contains(strings.ToLower(tag), lower) {
			return true
		}
	}
	for _, occ := range candidate.Occasions {
		if strings.Contains(strings.ToLower(occ), lower) {
			return true
		}
	}
	return false
}

// orderedDimensions returns the profile's dimensions in a fixed order so
// reason lists are deterministic.
func orderedDimensions(profile Profile) []Dimension {
	all := []Dimension{DimCategory, DimStyle, DimColor, DimPattern, DimFormality, DimQuality}
	out := make([]Dimension, 0, len(profile.Weights))
	for _, dim := range all {
		if _, ok := profile.Weights[dim]; ok {
			out = append(out, dim)
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
