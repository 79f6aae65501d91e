package catalog

import "time"

// demoProducts is the static in-memory demo catalog. It keeps the
// storefront browsable before any rows exist in the database.
var demoProducts = []Product{
	{
		ID:          "demo-navy-suit",
		Name:        "Classic Navy Suit",
		Description: "Two-piece wool suit in deep navy with a tailored fit.",
		Price:       599.00,
		Category:    "suits",
		Color:       "navy",
		Material:    "wool",
		Tags:        []string{"tailored", "wool", "two-piece"},
		Occasions:   []string{"business", "wedding"},
		Images:      []string{"/images/demo/navy-suit.jpg"},
		InStock:     true,
		Trending:    true,
		CreatedAt:   time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "demo-charcoal-suit",
		Name:        "Charcoal Grey Suit",
		Description: "Slim-cut charcoal suit with natural stretch.",
		Price:       549.00,
		Category:    "suits",
		Color:       "charcoal grey",
		Material:    "wool blend",
		Tags:        []string{"slim", "stretch"},
		Occasions:   []string{"business"},
		Images:      []string{"/images/demo/charcoal-suit.jpg"},
		InStock:     true,
		CreatedAt:   time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "demo-white-dress-shirt",
		Name:        "White Dress Shirt",
		Description: "Crisp poplin dress shirt with spread collar.",
		Price:       89.00,
		Category:    "shirts",
		Color:       "white",
		Material:    "cotton",
		Tags:        []string{"poplin", "spread-collar"},
		Occasions:   []string{"business", "formal"},
		Images:      []string{"/images/demo/white-shirt.jpg"},
		InStock:     true,
		CreatedAt:   time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "demo-light-blue-shirt",
		Name:        "Light Blue Oxford Shirt",
		Description: "Washed oxford cloth button-down in light blue.",
		Price:       79.00,
		Category:    "shirts",
		Color:       "light blue",
		Material:    "cotton",
		Tags:        []string{"oxford", "button-down"},
		Occasions:   []string{"casual", "business"},
		Images:      []string{"/images/demo/blue-oxford.jpg"},
		InStock:     true,
		CreatedAt:   time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "demo-black-tuxedo",
		Name:        "Black Peak-Lapel Tuxedo",
		Description: "Satin peak-lapel tuxedo for black-tie evenings.",
		Price:       799.00,
		Category:    "suits",
		Color:       "black",
		Material:    "wool",
		Tags:        []string{"tuxedo", "peak-lapel", "black-tie"},
		Occasions:   []string{"formal", "wedding"},
		Images:      []string{"/images/demo/black-tuxedo.jpg"},
		InStock:     true,
		CreatedAt:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "demo-navy-blazer",
		Name:        "Navy Hopsack Blazer",
		Description: "Unstructured hopsack blazer with patch pockets.",
		Price:       349.00,
		Category:    "blazers",
		Color:       "navy",
		Material:    "wool",
		Tags:        []string{"hopsack", "unstructured"},
		Occasions:   []string{"business", "casual"},
		Images:      []string{"/images/demo/navy-blazer.jpg"},
		InStock:     true,
		Trending:    true,
		CreatedAt:   time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "demo-grey-trousers",
		Name:        "Grey Flannel Trousers",
		Description: "Mid-grey flannel trousers with a tapered leg.",
		Price:       159.00,
		Category:    "trousers",
		Color:       "grey",
		Material:    "flannel",
		Tags:        []string{"flannel", "tapered"},
		Occasions:   []string{"business", "casual"},
		Images:      []string{"/images/demo/grey-trousers.jpg"},
		InStock:     true,
		CreatedAt:   time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "demo-dark-denim",
		Name:        "Dark Selvedge Denim",
		Description: "Raw selvedge denim in a straight cut.",
		Price:       139.00,
		Category:    "trousers",
		Color:       "indigo",
		Material:    "denim",
		Tags:        []string{"selvedge", "raw"},
		Occasions:   []string{"casual"},
		Images:      []string{"/images/demo/dark-denim.jpg"},
		InStock:     true,
		CreatedAt:   time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "demo-brown-brogues",
		Name:        "Brown Leather Brogues",
		Description: "Goodyear-welted full brogues in chestnut calf.",
		Price:       229.00,
		Category:    "shoes",
		Color:       "brown",
		Material:    "leather",
		Tags:        []string{"goodyear", "brogue"},
		Occasions:   []string{"business", "wedding"},
		Images:      []string{"/images/demo/brown-brogues.jpg"},
		InStock:     true,
		CreatedAt:   time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "demo-silk-tie",
		Name:        "Burgundy Silk Tie",
		Description: "Seven-fold silk tie in burgundy grenadine.",
		Price:       69.00,
		Category:    "accessories",
		Color:       "burgundy",
		Material:    "silk",
		Tags:        []string{"grenadine", "seven-fold"},
		Occasions:   []string{"business", "formal", "wedding"},
		Images:      nil, // placeholder substituted by normalization
		InStock:     true,
		CreatedAt:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	},
}

// Demo returns the normalized demo catalog.
func Demo() []Product {
	return normalizeAll(demoProducts, SourceDemo)
}
