package recommend

import (
	"context"
	"errors"
	"strings"

	"storefront-backend/internal/catalog"
)

// RecommendationType labels where a recommendation set came from.
const (
	TypeSimilar      = "similar"
	TypeOutfit       = "outfit"
	TypePersonalized = "personalized"
)

// PreferenceSource resolves a shopper's stored style preferences. A nil
// result means no preferences are on file.
type PreferenceSource interface {
	Preferences(ctx context.Context, userID string) (*Preferences, error)
}

// Service produces ranked recommendations over the unified catalog.
type Service struct {
	Catalog *catalog.Service
	Prefs   PreferenceSource
	Scorer  SubScorer
}

// Request captures one recommendation call.
type Request struct {
	Type      string
	Context   string
	UserID    string
	ProductID string
	Limit     int
	Threshold float64
	Profile   string
}

// Recommend ranks catalog candidates against the request's source product
// or browsing context.
func (s *Service) Recommend(ctx context.Context, req Request) ([]Scored, error) {
	var source Traits
	var excludeID string

	switch {
	case strings.TrimSpace(req.ProductID) != "":
		product, err := s.Catalog.Get(ctx, req.ProductID)
		if err != nil {
			return nil, err
		}
		source = TraitsFromProduct(product)
		excludeID = product.ID
	case strings.TrimSpace(req.Context) != "":
		source = traitsFromContext(req.Context)
	default:
		return nil, errors.New("productId or context is required")
	}

	candidates := s.Catalog.Candidates(ctx)
	if excludeID != "" {
		filtered := candidates[:0]
		for _, c := range candidates {
			if c.ID != excludeID {
				filtered = append(filtered, c)
			}
		}
		candidates = filtered
	}

	opts := Options{
		Profile:   ProfileByName(req.Profile),
		Scorer:    s.Scorer,
		Threshold: req.Threshold,
		Limit:     req.Limit,
		Type:      normalizeType(req.Type),
	}
	if req.UserID != "" && s.Prefs != nil {
		if prefs, err := s.Prefs.Preferences(ctx, req.UserID); err == nil && prefs != nil {
			opts.Prefs = prefs
			if opts.Type == TypeSimilar && req.ProductID == "" {
				opts.Type = TypePersonalized
			}
		}
	}

	return Rank(source, candidates, opts), nil
}

// traitsFromContext derives scoring traits from a free-form browsing
// context string such as "business" or "wedding casual navy".
func traitsFromContext(context string) Traits {
	words := strings.Fields(strings.ToLower(context))
	t := Traits{Formality: defaultFormality, Keywords: words}
	for _, w := range words {
		switch w {
		case "formal", "business", "casual", "wedding":
			if t.Style == "" {
				t.Style = w
			}
			t.Formality = EstimateFormality(w, "")
		case "navy", "black", "white", "grey", "gray", "brown", "burgundy", "blue", "indigo", "charcoal":
			if t.Color == "" {
				t.Color = w
			}
		}
	}
	if t.Style == "" {
		t.Style = "classic"
	}
	return t
}

func normalizeType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case TypeOutfit:
		return TypeOutfit
	case TypePersonalized:
		return TypePersonalized
	default:
		return TypeSimilar
	}
}
