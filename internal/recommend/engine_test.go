package recommend

import (
	"testing"

	"storefront-backend/internal/catalog"
)

// fixedScorer returns the same value for every dimension.
type fixedScorer struct {
	value float64
}

func (s fixedScorer) Score(dim Dimension, source, candidate Traits) float64 {
	return s.value
}

func TestScoreClampedToUnitInterval(t *testing.T) {
	score, _ := Score(Traits{}, catalog.Product{}, ProfileAdvanced, fixedScorer{value: 5})
	if score != 1 {
		t.Fatalf("expected clamp to 1, got %f", score)
	}
	score, _ = Score(Traits{}, catalog.Product{}, ProfileAdvanced, fixedScorer{value: -2})
	if score != 0 {
		t.Fatalf("expected clamp to 0, got %f", score)
	}
}

func TestScoreReasonsOnlyAboveThreshold(t *testing.T) {
	_, reasons := Score(Traits{}, catalog.Product{}, ProfileAdvanced, fixedScorer{value: 0.85})
	if len(reasons) != len(ProfileAdvanced.Weights) {
		t.Fatalf("expected a reason per dimension, got %d", len(reasons))
	}
	_, reasons = Score(Traits{}, catalog.Product{}, ProfileAdvanced, fixedScorer{value: 0.75})
	if len(reasons) != 0 {
		t.Fatalf("expected no reasons below the threshold, got %v", reasons)
	}
}

func TestScoreWeightedSum(t *testing.T) {
	score, _ := Score(Traits{}, catalog.Product{}, ProfileBasic, fixedScorer{value: 0.5})
	// All basic weights sum to 1, so a uniform sub-score passes through.
	if score < 0.499 || score > 0.501 {
		t.Fatalf("expected weighted sum 0.5, got %f", score)
	}
}

func TestRankFiltersBelowThreshold(t *testing.T) {
	candidates := []catalog.Product{
		{ID: "p1", Category: "suits"},
		{ID: "p2", Category: "ties"},
	}
	source := Traits{Category: "suits", Formality: 6}
	ranked := Rank(source, candidates, Options{
		Profile:   ProfileBasic,
		Scorer:    AttributeScorer{},
		Threshold: 0.70,
	})
	for _, r := range ranked {
		if r.Score < 0.70 {
			t.Fatalf("result %s below threshold: %f", r.Product.ID, r.Score)
		}
		if r.Product.ID == "p2" {
			t.Fatalf("cross-category candidate should have been filtered")
		}
	}
}

func TestRankTieBreakByProductID(t *testing.T) {
	candidates := []catalog.Product{
		{ID: "p3"}, {ID: "p1"}, {ID: "p2"},
	}
	ranked := Rank(Traits{}, candidates, Options{
		Profile:   ProfileBasic,
		Scorer:    fixedScorer{value: 0.9},
		Threshold: 0.5,
	})
	if len(ranked) != 3 {
		t.Fatalf("expected 3 results, got %d", len(ranked))
	}
	for i, want := range []string{"p1", "p2", "p3"} {
		if ranked[i].Product.ID != want {
			t.Fatalf("position %d: got %s, want %s", i, ranked[i].Product.ID, want)
		}
	}
}

func TestRankTruncatesToLimit(t *testing.T) {
	var candidates []catalog.Product
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		candidates = append(candidates, catalog.Product{ID: id})
	}
	ranked := Rank(Traits{}, candidates, Options{
		Profile:   ProfileBasic,
		Scorer:    fixedScorer{value: 0.9},
		Threshold: 0.5,
		Limit:     2,
	})
	if len(ranked) != 2 {
		t.Fatalf("expected limit 2, got %d", len(ranked))
	}
}

func TestRankAppliesPersonalizationBonuses(t *testing.T) {
	plain := catalog.Product{ID: "p1", Color: "Navy"}
	boosted := catalog.Product{ID: "p2", Color: "Burgundy", Trending: true, InStock: true}

	prefs := &Preferences{PreferredColors: []string{"burgundy"}}
	ranked := Rank(Traits{}, []catalog.Product{plain, boosted}, Options{
		Profile:   ProfileBasic,
		Scorer:    fixedScorer{value: 0.8},
		Threshold: 0.5,
		Prefs:     prefs,
	})
	if len(ranked) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ranked))
	}
	if ranked[0].Product.ID != "p2" {
		t.Fatalf("expected boosted product first, got %s", ranked[0].Product.ID)
	}
	// +0.10 color, +0.05 trending, +0.02 in stock on a 0.8 base.
	if got := ranked[0].Score; got < 0.969 || got > 0.971 {
		t.Fatalf("expected adjusted score 0.97, got %f", got)
	}
	found := false
	for _, reason := range ranked[0].Reasons {
		if reason == "Matches your preferred colors" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected color preference reason, got %v", ranked[0].Reasons)
	}
}

func TestRankBonusNeverExceedsOne(t *testing.T) {
	candidate := catalog.Product{ID: "p1", Color: "navy", Trending: true, InStock: true}
	ranked := Rank(Traits{}, []catalog.Product{candidate}, Options{
		Profile:   ProfileBasic,
		Scorer:    fixedScorer{value: 0.99},
		Threshold: 0.5,
		Prefs:     &Preferences{PreferredColors: []string{"navy"}},
	})
	if len(ranked) != 1 {
		t.Fatalf("expected 1 result")
	}
	if ranked[0].Score > 1 {
		t.Fatalf("score exceeds 1: %f", ranked[0].Score)
	}
}
