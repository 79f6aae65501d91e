package recommend

import (
	"math/rand"
	"strings"
	"sync"
)

// SubScorer computes one dimension's similarity in [0,1]. The engine takes
// it as a strategy so the stub behavior stays swappable without touching
// callers.
type SubScorer interface {
	Score(dim Dimension, source, candidate Traits) float64
}

// StubScorer reproduces the placeholder behavior of the original scoring
// path: a uniform value in [0.6,1.0) per dimension, independent of the
// actual attributes. Keep it out of production wiring unless behavioral
// parity matters more than fidelity.
type StubScorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewStubScorer seeds the stub's random source.
func NewStubScorer(seed int64) *StubScorer {
	return &StubScorer{rng: rand.New(rand.NewSource(seed))}
}

// Score returns a uniform value in [0.6,1.0) regardless of inputs.
func (s *StubScorer) Score(dim Dimension, source, candidate Traits) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()*0.4 + 0.6
}

// AttributeScorer is the deterministic replacement: every dimension is
// computed from the traits actually present on both sides.
type AttributeScorer struct{}

// Score computes the given dimension from product attributes.
func (AttributeScorer) Score(dim Dimension, source, candidate Traits) float64 {
	switch dim {
	case DimStyle:
		return styleScore(source, candidate)
	case DimColor:
		return colorScore(source.Color, candidate.Color)
	case DimPattern:
		return patternScore(source.Pattern, candidate.Pattern)
	case DimFormality:
		return FormalityScore(source.Formality, candidate.Formality)
	case DimQuality:
		return qualityScore(candidate.Material)
	case DimCategory:
		return categoryScore(source.Category, candidate.Category)
	default:
		return 0
	}
}

func styleScore(source, candidate Traits) float64 {
	if source.Style != "" && strings.EqualFold(source.Style, candidate.Style) {
		return 1
	}
	for _, k := range source.Keywords {
		for _, ck := range candidate.Keywords {
			if k == ck {
				return 0.7
			}
		}
	}
	if source.Style == "" || candidate.Style == "" {
		return 0.5
	}
	return 0.3
}

// neutralColors pair well with nearly everything.
var neutralColors = map[string]bool{
	"white": true, "black": true, "grey": true, "gray": true,
	"navy": true, "charcoal": true, "beige": true,
}

func colorScore(source, candidate string) float64 {
	if source == "" || candidate == "" {
		return 0.5
	}
	if strings.EqualFold(source, candidate) {
		return 1
	}
	if strings.Contains(candidate, source) || strings.Contains(source, candidate) {
		return 0.9
	}
	if isNeutral(source) || isNeutral(candidate) {
		return 0.8
	}
	return 0.4
}

func isNeutral(color string) bool {
	for name := range neutralColors {
		if strings.Contains(color, name) {
			return true
		}
	}
	return false
}

func patternScore(source, candidate string) float64 {
	if source == "" || candidate == "" {
		return 0.5
	}
	if strings.EqualFold(source, candidate) {
		return 1
	}
	// A solid piece pairs with any pattern.
	if source == "solid" || candidate == "solid" {
		return 0.8
	}
	return 0.2
}

func qualityScore(material string) float64 {
	switch {
	case material == "":
		return 0.6
	case strings.Contains(material, "wool"),
		strings.Contains(material, "silk"),
		strings.Contains(material, "leather"),
		strings.Contains(material, "cashmere"):
		return 0.9
	case strings.Contains(material, "cotton"), strings.Contains(material, "linen"):
		return 0.7
	default:
		return 0.6
	}
}

func categoryScore(source, candidate string) float64 {
	if source == "" || candidate == "" {
		return 0.5
	}
	if strings.EqualFold(source, candidate) {
		return 1
	}
	return 0
}
