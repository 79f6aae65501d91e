package recommend

import "testing"

func TestEstimateFormality(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     int
	}{
		{name: "Midnight Tuxedo", category: "suits", want: 10},
		{name: "Navy Suit", category: "suits", want: 8},
		{name: "Linen Blazer", category: "jackets", want: 6},
		{name: "Weekend Denim Jacket", category: "casual", want: 3},
		{name: "Leather Belt", category: "accessories", want: 6},
	}
	for _, tt := range tests {
		if got := EstimateFormality(tt.name, tt.category); got != tt.want {
			t.Fatalf("EstimateFormality(%q, %q) = %d, want %d", tt.name, tt.category, got, tt.want)
		}
	}
}

func TestFormalityScore(t *testing.T) {
	if got := FormalityScore(8, 8); got != 1 {
		t.Fatalf("equal formality = %f, want 1", got)
	}
	if got := FormalityScore(8, 3); got != 0.5 {
		t.Fatalf("gap of 5 = %f, want 0.5", got)
	}
	if got, want := FormalityScore(10, 3), FormalityScore(3, 10); got != want {
		t.Fatalf("expected symmetry, got %f vs %f", got, want)
	}
}
