package vision

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestPlaceholderAlwaysFails(t *testing.T) {
	_, err := Placeholder{}.Analyze(context.Background(), "data:image/jpeg;base64,AAAA")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestFallbackAnalysisIsStable(t *testing.T) {
	want := Analysis{
		Style:      "formal",
		Colors:     []string{"navy", "white"},
		Patterns:   []string{"solid"},
		Garments:   []string{"suit", "dress shirt"},
		Occasion:   "business",
		Formality:  8,
		MarketTier: "premium",
	}
	if got := FallbackAnalysis(); !reflect.DeepEqual(got, want) {
		t.Fatalf("fallback analysis changed: %+v", got)
	}
}

func TestParseAnalysisValidJSON(t *testing.T) {
	raw := `{"style":"casual","colors":["olive"],"patterns":["checked"],"garments":["chinos"],"occasion":"weekend","formality":4,"marketTier":"value"}`
	a := ParseAnalysis(raw)
	if a.Style != "casual" || a.Formality != 4 || a.Occasion != "weekend" {
		t.Fatalf("unexpected analysis: %+v", a)
	}
	if len(a.Colors) != 1 || a.Colors[0] != "olive" {
		t.Fatalf("unexpected colors: %v", a.Colors)
	}
}

func TestParseAnalysisFreeText(t *testing.T) {
	a := ParseAnalysis("This looks like a navy suit with a white shirt, quite formal overall.")
	if a.Style != "formal" {
		t.Fatalf("expected formal style, got %q", a.Style)
	}
	if a.Formality != 8 || a.Occasion != "business" {
		t.Fatalf("unexpected formality mapping: %+v", a)
	}
	if !contains(a.Colors, "navy") || !contains(a.Colors, "white") {
		t.Fatalf("expected navy and white, got %v", a.Colors)
	}
	if !contains(a.Garments, "suit") || !contains(a.Garments, "shirt") {
		t.Fatalf("expected suit and shirt, got %v", a.Garments)
	}
}

func TestParseLooseFormalityHeuristics(t *testing.T) {
	cases := []struct {
		text      string
		formality int
		occasion  string
	}{
		{"a black tuxedo for the gala", 10, "formal"},
		{"a grey business suit", 8, "business"},
		{"casual weekend chinos", 4, "casual"},
		{"some trousers", 6, "business"},
	}
	for _, tc := range cases {
		a := ParseLoose(tc.text)
		if a.Formality != tc.formality || a.Occasion != tc.occasion {
			t.Errorf("ParseLoose(%q) = formality %d occasion %q, want %d %q",
				tc.text, a.Formality, a.Occasion, tc.formality, tc.occasion)
		}
	}
}

func TestParseAnalysisAppliesDefaults(t *testing.T) {
	a := ParseAnalysis("nothing recognizable here")
	if a.Style != "classic" {
		t.Errorf("expected default style classic, got %q", a.Style)
	}
	if len(a.Colors) != 1 || a.Colors[0] != "navy" {
		t.Errorf("expected default color navy, got %v", a.Colors)
	}
	if len(a.Patterns) != 1 || a.Patterns[0] != "solid" {
		t.Errorf("expected default pattern solid, got %v", a.Patterns)
	}
	if a.Formality != 6 || a.Occasion != "business" || a.MarketTier != "mid-range" {
		t.Errorf("unexpected defaults: %+v", a)
	}
}

func TestFeaturesFromAnalysis(t *testing.T) {
	f := FeaturesFromAnalysis(FallbackAnalysis())
	if f.Style != "formal" || f.Color != "navy" || f.Category != "suit" || f.Formality != 8 {
		t.Fatalf("unexpected features: %+v", f)
	}
	want := []string{"navy", "white", "solid", "suit", "dress shirt", "formal", "business"}
	if !reflect.DeepEqual(f.Keywords, want) {
		t.Fatalf("unexpected keywords: %v", f.Keywords)
	}
}

func TestFeaturesFromAnalysisEmpty(t *testing.T) {
	f := FeaturesFromAnalysis(Analysis{})
	if f.Formality != 6 {
		t.Fatalf("expected default formality 6, got %d", f.Formality)
	}
	if f.Color != "" || f.Category != "" {
		t.Fatalf("expected empty color and category: %+v", f)
	}
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
