package catalog

import "time"

// Row is a raw product row as fetched from the hosted database, before
// normalization into the canonical Product shape.
type Row struct {
	ID                 string
	Title              string
	Description        string
	PriceCents         int64
	OriginalPriceCents *int64
	Category           string
	Color              string
	Material           string
	Tags               []string
	Occasions          []string
	Images             []string
	InStock            bool
	Trending           bool
	StripePriceID      string
	CreatedAt          time.Time
}

// FromRow adapts a database row into the canonical Product shape.
func FromRow(r Row) Product {
	p := Product{
		ID:            r.ID,
		Name:          r.Title,
		Description:   r.Description,
		Price:         float64(r.PriceCents) / 100,
		Category:      r.Category,
		Color:         r.Color,
		Material:      r.Material,
		Tags:          r.Tags,
		Occasions:     r.Occasions,
		Images:        r.Images,
		InStock:       r.InStock,
		Trending:      r.Trending,
		StripePriceID: r.StripePriceID,
		Source:        SourceDatabase,
		CreatedAt:     r.CreatedAt,
	}
	if r.OriginalPriceCents != nil {
		original := float64(*r.OriginalPriceCents) / 100
		p.OriginalPrice = &original
	}
	return Normalize(p)
}

// Normalize enforces the canonical-product invariants shared by every
// source: non-nil slices and at least one image.
func Normalize(p Product) Product {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Occasions == nil {
		p.Occasions = []string{}
	}
	if len(p.Images) == 0 {
		p.Images = []string{PlaceholderImage}
	}
	return p
}

func normalizeAll(products []Product, source Source) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		p.Source = source
		out = append(out, Normalize(p))
	}
	return out
}
