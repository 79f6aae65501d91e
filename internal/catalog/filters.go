package catalog

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Sort fields accepted by Search. Unknown fields fall back to newest-first.
const (
	SortCreatedAt = "created_at"
	SortPrice     = "price"
	SortTitle     = "title"
)

// Filters is the immutable per-request filter set for unified search.
// All active predicates are ANDed together.
type Filters struct {
	Category  []string
	Color     []string
	MinPrice  *float64
	MaxPrice  *float64
	Tags      []string
	Occasions []string
	Page      int
	Limit     int
	SortBy    string
	SortDesc  bool
}

// FiltersFromQuery parses URL query parameters into a normalized Filters.
func FiltersFromQuery(values url.Values) Filters {
	f := Filters{
		Category:  splitMulti(values, "category"),
		Color:     splitMulti(values, "color"),
		Tags:      splitMulti(values, "tags"),
		Occasions: splitMulti(values, "occasions"),
		Page:      1,
		Limit:     defaultLimit,
		SortBy:    SortCreatedAt,
		SortDesc:  true,
	}

	if v := strings.TrimSpace(values.Get("minPrice")); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			f.MinPrice = &parsed
		}
	}
	if v := strings.TrimSpace(values.Get("maxPrice")); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			f.MaxPrice = &parsed
		}
	}
	if v := strings.TrimSpace(values.Get("page")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			f.Page = parsed
		}
	}
	if v := strings.TrimSpace(values.Get("limit")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			f.Limit = parsed
		}
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	switch strings.TrimSpace(values.Get("sort")) {
	case "price_asc":
		f.SortBy, f.SortDesc = SortPrice, false
	case "price_desc":
		f.SortBy, f.SortDesc = SortPrice, true
	case "title":
		f.SortBy, f.SortDesc = SortTitle, false
	case "newest", "":
		f.SortBy, f.SortDesc = SortCreatedAt, true
	default:
		f.SortBy, f.SortDesc = SortCreatedAt, true
	}

	return f
}

// CacheKey serializes the filter set into a stable string. Equal filter
// sets always produce equal keys regardless of original parameter order.
func (f Filters) CacheKey() string {
	var b strings.Builder
	writeList := func(name string, vals []string) {
		if len(vals) == 0 {
			return
		}
		sorted := append([]string(nil), vals...)
		sort.Strings(sorted)
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(strings.Join(sorted, ","))
		b.WriteString("&")
	}
	writeList("category", f.Category)
	writeList("color", f.Color)
	writeList("tags", f.Tags)
	writeList("occasions", f.Occasions)
	if f.MinPrice != nil {
		b.WriteString("min=" + strconv.FormatFloat(*f.MinPrice, 'f', 2, 64) + "&")
	}
	if f.MaxPrice != nil {
		b.WriteString("max=" + strconv.FormatFloat(*f.MaxPrice, 'f', 2, 64) + "&")
	}
	b.WriteString("page=" + strconv.Itoa(f.Page))
	b.WriteString("&limit=" + strconv.Itoa(f.Limit))
	b.WriteString("&sort=" + f.SortBy)
	if f.SortDesc {
		b.WriteString(":desc")
	} else {
		b.WriteString(":asc")
	}
	return b.String()
}

// Matches reports whether the product satisfies every active predicate.
func (f Filters) Matches(p Product) bool {
	if len(f.Category) > 0 && !containsFold(f.Category, p.Category) {
		return false
	}
	if len(f.Color) > 0 && !colorMatches(f.Color, p.Color) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if len(f.Tags) > 0 && !intersectsFold(f.Tags, p.Tags) {
		return false
	}
	if len(f.Occasions) > 0 && !intersectsFold(f.Occasions, p.Occasions) {
		return false
	}
	return true
}

func splitMulti(values url.Values, key string) []string {
	var out []string
	for _, raw := range values[key] {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

// colorMatches checks each wanted color as a case-insensitive substring of
// the product color, so "navy" matches "navy blue".
func colorMatches(wanted []string, color string) bool {
	if color == "" {
		return false
	}
	lower := strings.ToLower(color)
	for _, w := range wanted {
		if strings.Contains(lower, strings.ToLower(strings.TrimSpace(w))) {
			return true
		}
	}
	return false
}

func intersectsFold(wanted, have []string) bool {
	for _, w := range wanted {
		for _, h := range have {
			if strings.EqualFold(w, h) {
				return true
			}
		}
	}
	return false
}
