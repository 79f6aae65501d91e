package catalog

import "time"

// PlaceholderImage is substituted by normalization when a source provides
// no imagery, so every product renders.
const PlaceholderImage = "/images/placeholder-product.jpg"

// Source identifies which catalog source a product came from.
type Source string

const (
	SourceDemo     Source = "demo"
	SourceBundle   Source = "bundle"
	SourceDatabase Source = "database"
)

// Product is the canonical post-normalization product shape shared by all
// three catalog sources.
type Product struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Price            float64           `json:"price"`
	OriginalPrice    *float64          `json:"originalPrice,omitempty"`
	Category         string            `json:"category"`
	Color            string            `json:"color,omitempty"`
	Material         string            `json:"material,omitempty"`
	Tags             []string          `json:"tags"`
	Occasions        []string          `json:"occasions"`
	Images           []string          `json:"images"`
	InStock          bool              `json:"inStock"`
	Trending         bool              `json:"trending,omitempty"`
	IsBundle         bool              `json:"isBundle"`
	BundleComponents []BundleComponent `json:"bundleComponents,omitempty"`
	StripePriceID    string            `json:"stripePriceId,omitempty"`
	Source           Source            `json:"-"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// BundleComponent is one garment inside a pre-built outfit bundle. It has
// no identity outside its parent bundle.
type BundleComponent struct {
	Type     string   `json:"type"`
	Name     string   `json:"name"`
	Color    string   `json:"color,omitempty"`
	Material string   `json:"material,omitempty"`
	Image    string   `json:"image,omitempty"`
	Sizes    []string `json:"sizes,omitempty"`
}
