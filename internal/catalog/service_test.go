package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-backend/internal/shared/cache"
)

// countingRepo wraps MemoryRepo and counts ListActive calls.
type countingRepo struct {
	*MemoryRepo
	listCalls int
}

func (r *countingRepo) ListActive(ctx context.Context) ([]Product, error) {
	r.listCalls++
	return r.MemoryRepo.ListActive(ctx)
}

// failingRepo simulates a database outage.
type failingRepo struct{}

func (failingRepo) ListActive(ctx context.Context) ([]Product, error) {
	return nil, errors.New("connection refused")
}
func (failingRepo) GetByID(ctx context.Context, productID string) (Product, error) {
	return Product{}, errors.New("connection refused")
}
func (failingRepo) Create(ctx context.Context, row Row) error    { return errors.New("connection refused") }
func (failingRepo) Delete(ctx context.Context, productID string) error {
	return errors.New("connection refused")
}

func seedRepo(t *testing.T, n int) *MemoryRepo {
	t.Helper()
	repo := NewMemoryRepo()
	for i := 0; i < n; i++ {
		err := repo.Create(context.Background(), Row{
			ID:         "db-" + string(rune('a'+i)),
			Title:      "Database Product " + string(rune('A'+i)),
			PriceCents: int64(10000 * (i + 1)),
			Category:   "suits",
			CreatedAt:  time.Date(2025, time.March, i+1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return repo
}

func TestSearchMergesAllSources(t *testing.T) {
	svc := &Service{Repo: seedRepo(t, 3)}

	result, err := svc.Search(context.Background(), Filters{Limit: 100, Page: 1})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	want := len(Demo()) + len(Bundles()) + 3
	if result.TotalCount != want {
		t.Fatalf("expected %d merged products, got %d", want, result.TotalCount)
	}
	if result.Warning != "" {
		t.Fatalf("unexpected warning: %q", result.Warning)
	}
}

func TestSearchDegradesWhenDatabaseDown(t *testing.T) {
	svc := &Service{Repo: failingRepo{}}

	result, err := svc.Search(context.Background(), Filters{Limit: 100, Page: 1})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Warning != WarningDatabaseDown {
		t.Fatalf("expected degrade warning, got %q", result.Warning)
	}
	want := len(Demo()) + len(Bundles())
	if result.TotalCount != want {
		t.Fatalf("expected %d static products, got %d", want, result.TotalCount)
	}
}

func TestSearchServesSecondCallFromCache(t *testing.T) {
	repo := &countingRepo{MemoryRepo: seedRepo(t, 1)}
	svc := &Service{Repo: repo, Cache: cache.NewMemory()}

	filters := Filters{Limit: 10, Page: 1, SortBy: SortCreatedAt}
	first, err := svc.Search(context.Background(), filters)
	if err != nil {
		t.Fatalf("first Search: %v", err)
	}
	second, err := svc.Search(context.Background(), filters)
	if err != nil {
		t.Fatalf("second Search: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 repo call, got %d", repo.listCalls)
	}
	if first.TotalCount != second.TotalCount {
		t.Fatalf("cached result differs: %d vs %d", first.TotalCount, second.TotalCount)
	}
}

func TestSearchPagination(t *testing.T) {
	svc := &Service{Repo: seedRepo(t, 0)}

	total := len(Demo()) + len(Bundles())
	limit := 5
	result, err := svc.Search(context.Background(), Filters{Limit: limit, Page: 2})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	wantPages := (total + limit - 1) / limit
	if result.TotalPages != wantPages {
		t.Fatalf("expected %d pages, got %d", wantPages, result.TotalPages)
	}
	if result.CurrentPage != 2 {
		t.Fatalf("expected page 2, got %d", result.CurrentPage)
	}
	if len(result.Products) == 0 || len(result.Products) > limit {
		t.Fatalf("unexpected page size %d", len(result.Products))
	}
}

func TestSearchSortsByPriceWithIDTieBreak(t *testing.T) {
	svc := &Service{}

	result, err := svc.Search(context.Background(), Filters{Limit: 100, Page: 1, SortBy: SortPrice})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	products := result.Products
	for i := 1; i < len(products); i++ {
		prev, cur := products[i-1], products[i]
		if prev.Price > cur.Price {
			t.Fatalf("products out of price order: %s (%f) before %s (%f)", prev.ID, prev.Price, cur.ID, cur.Price)
		}
		if prev.Price == cur.Price && prev.ID > cur.ID {
			t.Fatalf("tie not broken by ID: %s before %s", prev.ID, cur.ID)
		}
	}
}

func TestGetChecksAllSources(t *testing.T) {
	repo := seedRepo(t, 1)
	svc := &Service{Repo: repo}
	ctx := context.Background()

	demoID := Demo()[0].ID
	if _, err := svc.Get(ctx, demoID); err != nil {
		t.Fatalf("demo product: %v", err)
	}
	bundleID := Bundles()[0].ID
	if _, err := svc.Get(ctx, bundleID); err != nil {
		t.Fatalf("bundle product: %v", err)
	}
	if _, err := svc.Get(ctx, "db-a"); err != nil {
		t.Fatalf("database product: %v", err)
	}
	if _, err := svc.Get(ctx, "no-such-product"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
