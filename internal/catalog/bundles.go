package catalog

import "time"

// bundleProducts is the static pre-built outfit catalog. Each bundle owns
// its components; components have no identity of their own.
var bundleProducts = []Product{
	{
		ID:          "bundle-boardroom",
		Name:        "The Boardroom",
		Description: "Navy suit, white shirt and burgundy tie for the office.",
		Price:       699.00,
		OriginalPrice: func() *float64 {
			v := 757.00
			return &v
		}(),
		Category:  "bundles",
		Color:     "navy",
		Tags:      []string{"outfit", "office"},
		Occasions: []string{"business"},
		Images:    []string{"/images/bundles/boardroom.jpg"},
		InStock:   true,
		Trending:  true,
		IsBundle:  true,
		BundleComponents: []BundleComponent{
			{Type: "suit", Name: "Classic Navy Suit", Color: "navy", Material: "wool", Sizes: []string{"38R", "40R", "42R", "44R"}},
			{Type: "shirt", Name: "White Dress Shirt", Color: "white", Material: "cotton", Sizes: []string{"S", "M", "L", "XL"}},
			{Type: "tie", Name: "Burgundy Silk Tie", Color: "burgundy", Material: "silk"},
		},
		CreatedAt: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "bundle-black-tie",
		Name:        "Black Tie Evening",
		Description: "Peak-lapel tuxedo with all the formal trimmings.",
		Price:       899.00,
		Category:    "bundles",
		Color:       "black",
		Tags:        []string{"outfit", "tuxedo", "black-tie"},
		Occasions:   []string{"formal"},
		Images:      []string{"/images/bundles/black-tie.jpg"},
		InStock:     true,
		IsBundle:    true,
		BundleComponents: []BundleComponent{
			{Type: "suit", Name: "Black Peak-Lapel Tuxedo", Color: "black", Material: "wool", Sizes: []string{"38R", "40R", "42R"}},
			{Type: "shirt", Name: "Pleated Tuxedo Shirt", Color: "white", Material: "cotton"},
			{Type: "accessory", Name: "Black Silk Bow Tie", Color: "black", Material: "silk"},
		},
		CreatedAt: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "bundle-smart-casual",
		Name:        "Smart Casual Weekend",
		Description: "Hopsack blazer over oxford shirt and dark denim.",
		Price:       499.00,
		Category:    "bundles",
		Color:       "navy",
		Tags:        []string{"outfit", "weekend"},
		Occasions:   []string{"casual"},
		Images:      []string{"/images/bundles/smart-casual.jpg"},
		InStock:     true,
		IsBundle:    true,
		BundleComponents: []BundleComponent{
			{Type: "blazer", Name: "Navy Hopsack Blazer", Color: "navy", Material: "wool", Sizes: []string{"38R", "40R", "42R", "44R"}},
			{Type: "shirt", Name: "Light Blue Oxford Shirt", Color: "light blue", Material: "cotton", Sizes: []string{"S", "M", "L", "XL"}},
			{Type: "trousers", Name: "Dark Selvedge Denim", Color: "indigo", Material: "denim", Sizes: []string{"30", "32", "34", "36"}},
		},
		CreatedAt: time.Date(2025, 2, 17, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "bundle-wedding-guest",
		Name:        "Wedding Guest",
		Description: "Charcoal suit with brogues, ready for the ceremony.",
		Price:       749.00,
		Category:    "bundles",
		Color:       "charcoal grey",
		Tags:        []string{"outfit", "wedding"},
		Occasions:   []string{"wedding", "formal"},
		Images:      []string{"/images/bundles/wedding-guest.jpg"},
		InStock:     true,
		IsBundle:    true,
		BundleComponents: []BundleComponent{
			{Type: "suit", Name: "Charcoal Grey Suit", Color: "charcoal grey", Material: "wool blend", Sizes: []string{"38R", "40R", "42R"}},
			{Type: "shirt", Name: "White Dress Shirt", Color: "white", Material: "cotton"},
			{Type: "shoes", Name: "Brown Leather Brogues", Color: "brown", Material: "leather", Sizes: []string{"8", "9", "10", "11"}},
		},
		CreatedAt: time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC),
	},
}

// Bundles returns the normalized bundle catalog.
func Bundles() []Product {
	return normalizeAll(bundleProducts, SourceBundle)
}
