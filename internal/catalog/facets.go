package catalog

// Facets summarizes the filtered result set for storefront sidebars.
type Facets struct {
	Categories map[string]int `json:"categories"`
	Colors     map[string]int `json:"colors"`
	PriceMin   float64        `json:"priceMin"`
	PriceMax   float64        `json:"priceMax"`
}

func buildFacets(products []Product) Facets {
	f := Facets{
		Categories: make(map[string]int),
		Colors:     make(map[string]int),
	}
	for i, p := range products {
		f.Categories[p.Category]++
		if p.Color != "" {
			f.Colors[p.Color]++
		}
		if i == 0 || p.Price < f.PriceMin {
			f.PriceMin = p.Price
		}
		if p.Price > f.PriceMax {
			f.PriceMax = p.Price
		}
	}
	return f
}
