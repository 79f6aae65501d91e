package recommend

// Dimension is one independent axis of the similarity computation.
type Dimension string

const (
	DimStyle     Dimension = "style"
	DimColor     Dimension = "color"
	DimPattern   Dimension = "pattern"
	DimFormality Dimension = "formality"
	DimQuality   Dimension = "quality"
	DimCategory  Dimension = "category"
)

// Profile is a named weight set over scoring dimensions. Two schemes ship;
// callers pick one explicitly rather than the engine guessing.
type Profile struct {
	Name    string
	Weights map[Dimension]float64
}

// ProfileAdvanced weights visual attributes, used by the visual search
// pipeline.
var ProfileAdvanced = Profile{
	Name: "advanced",
	Weights: map[Dimension]float64{
		DimStyle:     0.30,
		DimColor:     0.25,
		DimPattern:   0.20,
		DimFormality: 0.15,
		DimQuality:   0.10,
	},
}

// ProfileBasic weights the wardrobe category first, used for
// product-to-product recommendations.
var ProfileBasic = Profile{
	Name: "basic",
	Weights: map[Dimension]float64{
		DimCategory:  0.40,
		DimColor:     0.25,
		DimStyle:     0.20,
		DimFormality: 0.15,
	},
}

// ProfileByName resolves a profile name, defaulting to basic.
func ProfileByName(name string) Profile {
	if name == ProfileAdvanced.Name {
		return ProfileAdvanced
	}
	return ProfileBasic
}
