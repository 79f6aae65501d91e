package vision

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by the placeholder client when no vision
// provider key is present.
var ErrNotConfigured = errors.New("vision provider not configured")

// Analysis is the structured description of an uploaded outfit image.
type Analysis struct {
	Style      string   `json:"style"`
	Colors     []string `json:"colors"`
	Patterns   []string `json:"patterns"`
	Garments   []string `json:"garments"`
	Occasion   string   `json:"occasion"`
	Formality  int      `json:"formality"`
	MarketTier string   `json:"marketTier"`
}

// Features is the flat record the similarity scorer consumes.
type Features struct {
	Style     string   `json:"style"`
	Color     string   `json:"color"`
	Formality int      `json:"formality"`
	Category  string   `json:"category"`
	Keywords  []string `json:"keywords"`
}

// Client describes an image in terms of menswear attributes.
type Client interface {
	Analyze(ctx context.Context, imageDataURL string) (Analysis, error)
}

// Placeholder is the client used when no provider is configured. Every
// call fails with ErrNotConfigured so callers take the fallback path.
type Placeholder struct{}

func (Placeholder) Analyze(context.Context, string) (Analysis, error) {
	return Analysis{}, ErrNotConfigured
}

// FallbackAnalysis is the fixed analysis substituted when the provider is
// unavailable or returns garbage.
func FallbackAnalysis() Analysis {
	return Analysis{
		Style:      "formal",
		Colors:     []string{"navy", "white"},
		Patterns:   []string{"solid"},
		Garments:   []string{"suit", "dress shirt"},
		Occasion:   "business",
		Formality:  8,
		MarketTier: "premium",
	}
}

// FeaturesFromAnalysis flattens an analysis into the scorer's shape.
func FeaturesFromAnalysis(a Analysis) Features {
	f := Features{
		Style:     a.Style,
		Formality: a.Formality,
	}
	if len(a.Colors) > 0 {
		f.Color = a.Colors[0]
	}
	if len(a.Garments) > 0 {
		f.Category = a.Garments[0]
	}
	if f.Formality <= 0 {
		f.Formality = 6
	}
	f.Keywords = append(f.Keywords, a.Colors...)
	f.Keywords = append(f.Keywords, a.Patterns...)
	f.Keywords = append(f.Keywords, a.Garments...)
	if a.Style != "" {
		f.Keywords = append(f.Keywords, a.Style)
	}
	if a.Occasion != "" {
		f.Keywords = append(f.Keywords, a.Occasion)
	}
	return f
}
