package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"storefront-backend/internal/shared/cache"
	"storefront-backend/internal/shared/metrics"
	"storefront-backend/internal/shared/telemetry"
)

const (
	defaultCacheTTL  = 5 * time.Minute
	defaultDBTimeout = 5 * time.Second

	// WarningDatabaseDown is attached to degraded results served from the
	// static sources only.
	WarningDatabaseDown = "product database unavailable; showing demo and bundle results only"
)

// SearchResult is a paged, faceted view over the merged catalog.
type SearchResult struct {
	Products    []Product `json:"products"`
	TotalCount  int       `json:"totalCount"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int       `json:"totalPages"`
	Facets      Facets    `json:"facets"`
	Warning     string    `json:"warning,omitempty"`
}

// Service merges the three catalog sources and serves unified search.
type Service struct {
	Repo      Repo // nil when no database is configured
	Cache     cache.Cache
	CacheTTL  time.Duration
	DBTimeout time.Duration
}

// Search applies the filter set across all sources and returns one page.
// A database outage degrades the result to the static sources with a
// warning instead of failing the request.
func (s *Service) Search(ctx context.Context, filters Filters) (SearchResult, error) {
	start := time.Now()
	metrics.IncSearch()

	key := filters.CacheKey()
	if s.Cache != nil {
		if raw, ok, err := s.Cache.Get(ctx, key); err == nil && ok {
			var cached SearchResult
			if err := json.Unmarshal(raw, &cached); err == nil {
				metrics.IncSearchCacheHit()
				return cached, nil
			}
		}
	}

	merged, warning := s.mergedProducts(ctx)

	filtered := make([]Product, 0, len(merged))
	for _, p := range merged {
		if filters.Matches(p) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, filters.SortBy, filters.SortDesc)
	facets := buildFacets(filtered)

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	page := filters.Page
	if page < 1 {
		page = 1
	}
	totalPages := (len(filtered) + limit - 1) / limit

	startIdx := (page - 1) * limit
	endIdx := startIdx + limit
	if startIdx > len(filtered) {
		startIdx = len(filtered)
	}
	if endIdx > len(filtered) {
		endIdx = len(filtered)
	}

	result := SearchResult{
		Products:    filtered[startIdx:endIdx],
		TotalCount:  len(filtered),
		CurrentPage: page,
		TotalPages:  totalPages,
		Facets:      facets,
		Warning:     warning,
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			ttl := s.CacheTTL
			if ttl <= 0 {
				ttl = defaultCacheTTL
			}
			if err := s.Cache.Set(ctx, key, raw, ttl); err != nil {
				telemetry.Warn("catalog.cache_set_failed", map[string]any{"error": err.Error()})
			}
		}
	}

	metrics.ObserveSearchDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return result, nil
}

// Get looks a product up across all three sources.
func (s *Service) Get(ctx context.Context, productID string) (Product, error) {
	if strings.TrimSpace(productID) == "" {
		return Product{}, errors.New("product id is required")
	}
	for _, p := range Demo() {
		if p.ID == productID {
			return p, nil
		}
	}
	for _, p := range Bundles() {
		if p.ID == productID {
			return p, nil
		}
	}
	if s.Repo == nil {
		return Product{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, productID)
}

// Candidates returns the merged active catalog for recommendation and
// visual-search scoring. Database failures degrade silently to the static
// sources.
func (s *Service) Candidates(ctx context.Context) []Product {
	merged, _ := s.mergedProducts(ctx)
	return merged
}

func (s *Service) mergedProducts(ctx context.Context) ([]Product, string) {
	merged := append(Demo(), Bundles()...)

	if s.Repo == nil {
		return merged, ""
	}

	timeout := s.DBTimeout
	if timeout <= 0 {
		timeout = defaultDBTimeout
	}
	dbCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	rows, err := s.Repo.ListActive(dbCtx)
	if err != nil {
		metrics.IncSearchDegraded()
		telemetry.Warn("catalog.database_degraded", map[string]any{"error": err.Error()})
		return merged, WarningDatabaseDown
	}
	return append(merged, rows...), ""
}

// sortProducts orders by the requested field with product ID as the
// deterministic secondary key.
func sortProducts(products []Product, sortBy string, desc bool) {
	less := func(a, b Product) bool {
		switch sortBy {
		case SortPrice:
			if a.Price != b.Price {
				return a.Price < b.Price
			}
		case SortTitle:
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		}
		return a.ID < b.ID
	}
	sort.SliceStable(products, func(i, j int) bool {
		if desc {
			// Keep the ID tie-break ascending regardless of direction.
			a, b := products[i], products[j]
			switch sortBy {
			case SortPrice:
				if a.Price != b.Price {
					return a.Price > b.Price
				}
			case SortTitle:
				if a.Name != b.Name {
					return a.Name > b.Name
				}
			default:
				if !a.CreatedAt.Equal(b.CreatedAt) {
					return a.CreatedAt.After(b.CreatedAt)
				}
			}
			return a.ID < b.ID
		}
		return less(products[i], products[j])
	})
}
