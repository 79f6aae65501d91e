package recommend

import (
	"context"
	"errors"
	"testing"

	"storefront-backend/internal/catalog"
)

type staticPrefs struct {
	prefs *Preferences
}

func (s staticPrefs) Preferences(ctx context.Context, userID string) (*Preferences, error) {
	return s.prefs, nil
}

func newRecommendService(prefs PreferenceSource) *Service {
	return &Service{
		Catalog: &catalog.Service{},
		Prefs:   prefs,
		Scorer:  AttributeScorer{},
	}
}

func TestRecommendRequiresSourceOrContext(t *testing.T) {
	svc := newRecommendService(nil)
	if _, err := svc.Recommend(context.Background(), Request{}); err == nil {
		t.Fatal("expected error without productId or context")
	}
}

func TestRecommendUnknownProduct(t *testing.T) {
	svc := newRecommendService(nil)
	_, err := svc.Recommend(context.Background(), Request{ProductID: "no-such-product"})
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected catalog.ErrNotFound, got %v", err)
	}
}

func TestRecommendExcludesSourceProduct(t *testing.T) {
	svc := newRecommendService(nil)
	sourceID := catalog.Demo()[0].ID

	scored, err := svc.Recommend(context.Background(), Request{
		ProductID: sourceID,
		Threshold: 0.01,
		Limit:     100,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, s := range scored {
		if s.Product.ID == sourceID {
			t.Fatalf("source product %s leaked into recommendations", sourceID)
		}
	}
}

func TestRecommendFromContext(t *testing.T) {
	svc := newRecommendService(nil)

	scored, err := svc.Recommend(context.Background(), Request{
		Context:   "business navy",
		Threshold: 0.01,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(scored) == 0 {
		t.Fatal("expected matches for a business context over the demo catalog")
	}
	for _, s := range scored {
		if s.Type != TypeSimilar {
			t.Fatalf("expected similar type, got %q", s.Type)
		}
	}
}

func TestRecommendPersonalizesWithPreferences(t *testing.T) {
	svc := newRecommendService(staticPrefs{prefs: &Preferences{
		PreferredColors:  []string{"navy"},
		StylePersonality: "classic",
	}})

	scored, err := svc.Recommend(context.Background(), Request{
		Context:   "business",
		UserID:    "google:123",
		Threshold: 0.01,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(scored) == 0 {
		t.Fatal("expected matches")
	}
	for _, s := range scored {
		if s.Type != TypePersonalized {
			t.Fatalf("expected personalized type, got %q", s.Type)
		}
	}
}

func TestTraitsFromContext(t *testing.T) {
	traits := traitsFromContext("Wedding Casual Navy")
	if traits.Style != "wedding" {
		t.Fatalf("expected first style keyword to win, got %q", traits.Style)
	}
	if traits.Color != "navy" {
		t.Fatalf("expected navy, got %q", traits.Color)
	}
	if len(traits.Keywords) != 3 {
		t.Fatalf("expected all words kept as keywords, got %v", traits.Keywords)
	}

	plain := traitsFromContext("browsing")
	if plain.Style != "classic" {
		t.Fatalf("expected default style, got %q", plain.Style)
	}
}

func TestNormalizeType(t *testing.T) {
	cases := map[string]string{
		"":             TypeSimilar,
		"similar":      TypeSimilar,
		"OUTFIT":       TypeOutfit,
		"personalized": TypePersonalized,
		"garbage":      TypeSimilar,
	}
	for raw, want := range cases {
		if got := normalizeType(raw); got != want {
			t.Errorf("normalizeType(%q) = %q, want %q", raw, got, want)
		}
	}
}
